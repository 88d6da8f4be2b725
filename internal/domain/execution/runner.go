package execution

import (
	"fmt"

	"github.com/felixgeelhaar/runbook/internal/domain/plan"
	"github.com/felixgeelhaar/runbook/internal/ports"
)

// Runner drives a plan until no step is eligible.
type Runner struct {
	sched  *Scheduler
	logger ports.Logger
}

// NewRunner creates a Runner with a clock-seeded scheduler.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		sched:  NewScheduler(),
		logger: logger,
	}
}

// WithScheduler returns a Runner using the given scheduler. Tests use
// this to pin the random source.
func (r *Runner) WithScheduler(s *Scheduler) *Runner {
	return &Runner{
		sched:  s,
		logger: r.logger,
	}
}

// Report summarizes a finished (or aborted) run.
type Report struct {
	// Succeeded is true when every step ended done.
	Succeeded bool
	// Executed counts the steps that ran this time.
	Executed int
	// Interrupted is true when the run stopped on context cancellation.
	// State is left exactly as last recorded.
	Interrupted bool
}

// Run executes the plan until quiescence.
//
// Sequence: validate the graph (a malformed plan is fatal and nothing
// executes), reset previously failed steps to pending so a checkpointed
// failure can be retried verbatim, then repeatedly pick an eligible step
// and run it. Strictly one step at a time. A step failure is recorded and
// merely blocks its dependents; a fatal error from a step (double run,
// expansion depth, lost input) aborts the loop and is returned.
//
// The report's Succeeded is true iff no step ended failed.
func (r *Runner) Run(rctx plan.RunContext, p *plan.Plan) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w: %w", plan.ErrInconsistentPlan, err)
	}

	p.ResetFailed()

	ctx := rctx.Context()
	report := Report{}

	for {
		select {
		case <-ctx.Done():
			// External interrupt: clean early stop, no further steps.
			report.Interrupted = true
			report.Succeeded = false
			return report, nil
		default:
		}

		next := r.sched.Next(p)
		if next == nil {
			break
		}

		r.logger.Debug(ctx, "running step",
			ports.F("step", next.Name()), ports.F("kind", next.Kind()))

		if err := next.Run(rctx, p); err != nil {
			return report, err
		}
		report.Executed++

		r.logger.Debug(ctx, "step finished",
			ports.F("step", next.Name()), ports.F("state", next.State()))
	}

	report.Succeeded = !p.AnyFailed()
	return report, nil
}
