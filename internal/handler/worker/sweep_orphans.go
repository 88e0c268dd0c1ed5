package worker

import (
	"context"
	"log"
	"time"

	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/task"
)

// SweepOrphansHandler handles a sweep-orphans task. It delegates to the
// OrphanSweeper service, which deletes unlinked assets past the grace
// period.
func SweepOrphansHandler(ctx context.Context, p task.SweepOrphansPayload, svc port.OrphanSweeper) error {
	started := time.Now()
	if err := svc.SweepOrphans(ctx); err != nil {
		log.Printf("❌  Orphan sweep failed: %v", err)
		return err
	}

	log.Printf("✅  Orphan sweep requested at %s completed in %s", p.RequestedAt.Format(time.RFC3339), time.Since(started))
	return nil
}
