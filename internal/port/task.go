package port

import "context"

// TaskDispatcher enqueues asynchronous maintenance tasks.
type TaskDispatcher interface {
	EnqueueSweepOrphans(ctx context.Context) error
}
