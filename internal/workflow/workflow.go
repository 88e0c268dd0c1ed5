package workflow

import (
	"context"
	"fmt"

	"github.com/dbk/assets-ms-go/internal/logger"
)

// Step is one unit of a compensable workflow. Forward performs the action
// and returns its output together with the input its Compensate needs to
// undo it. Compensate is only ever called with the value Forward captured,
// never with another step's output.
type Step struct {
	Name       string
	Forward    func(ctx context.Context) (output any, compInput any, err error)
	Compensate func(ctx context.Context, compInput any) error
}

// StepResult records one successfully completed forward action.
type StepResult struct {
	Name      string
	Output    any
	compInput any
}

// Run executes steps strictly in order. When step k fails, the
// compensations of steps k-1..1 run in reverse order, each with its own
// captured compensation input. Compensation failures are logged and never
// halt the reverse sweep. A workflow whose forward steps all succeed never
// compensates; its captured inputs are discarded with the results.
func Run(ctx context.Context, steps []Step) ([]StepResult, error) {
	done := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		out, comp, err := step.Forward(ctx)
		if err != nil {
			compensate(ctx, steps, done)
			return nil, fmt.Errorf("step %q failed: %w", step.Name, err)
		}
		done = append(done, StepResult{Name: step.Name, Output: out, compInput: comp})
	}

	return done, nil
}

func compensate(ctx context.Context, steps []Step, done []StepResult) {
	for i := len(done) - 1; i >= 0; i-- {
		res := done[i]
		step := steps[i]
		if step.Compensate == nil {
			continue
		}
		logger.Infof(ctx, "compensating step %q...", res.Name)
		if err := step.Compensate(ctx, res.compInput); err != nil {
			// Best-effort: every remaining compensation must still be attempted.
			logger.Warnf(ctx, "compensation of step %q failed: %v", res.Name, err)
		}
	}
}
