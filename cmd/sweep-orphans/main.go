package main

import (
	"context"
	"log"

	"github.com/dbk/assets-ms-go/internal/config"
	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	dispatcher := initDispatcher(cfg)
	if err := dispatcher.EnqueueSweepOrphans(context.Background()); err != nil {
		log.Fatalf("❌  Could not enqueue orphan sweep: %v", err)
	}
	log.Println("✅  Orphan sweep enqueued")
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
