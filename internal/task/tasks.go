package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSweepOrphans = "assets:sweep_orphans"

type SweepOrphansPayload struct {
	RequestedAt time.Time `json:"requested_at"`
}

// NewSweepOrphansTask creates an Asynq task for sweeping orphaned assets.
func NewSweepOrphansTask() (*asynq.Task, error) {
	p := SweepOrphansPayload{RequestedAt: time.Now()}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal sweep-orphans payload: %w", err)
	}
	return asynq.NewTask(TypeSweepOrphans, data), nil
}

// ParseSweepOrphansPayload parses the task payload to SweepOrphansPayload.
func ParseSweepOrphansPayload(t *asynq.Task) (SweepOrphansPayload, error) {
	var p SweepOrphansPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return SweepOrphansPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
