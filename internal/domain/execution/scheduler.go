// Package execution drives a plan to quiescence: the scheduler computes
// the eligible set and the runner executes one step at a time.
package execution

import (
	"math/rand"
	"time"

	"github.com/felixgeelhaar/runbook/internal/domain/plan"
)

// Scheduler selects the next step to run.
//
// Selection among eligible steps is uniformly random on purpose: steps
// with no edge between them should not be able to rely on any implicit
// order, and over repeated runs a hidden dependency will eventually
// surface as a failure. This is a fault-surfacing mechanism, not a
// performance device.
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler creates a scheduler seeded from the clock.
func NewScheduler() *Scheduler {
	return NewSchedulerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSchedulerWithSource creates a scheduler with an injected random
// source so tests can pin the selection order.
func NewSchedulerWithSource(src rand.Source) *Scheduler {
	return &Scheduler{rng: rand.New(src)}
}

// Eligible returns the steps that may run now: pending, with every
// predecessor exactly done. A failed or still-pending predecessor blocks.
// The slice is in sorted-name order (plan.Steps order) so the random pick
// below is reproducible under an injected source.
func (s *Scheduler) Eligible(p *plan.Plan) []plan.Step {
	eligible := make([]plan.Step, 0)

	for _, candidate := range p.Steps() {
		if candidate.State() != plan.StatePending {
			continue
		}
		blocked := false
		for _, name := range candidate.Predecessors() {
			pred, ok := p.Step(name)
			if !ok || pred.State() != plan.StateDone {
				blocked = true
				break
			}
		}
		if !blocked {
			eligible = append(eligible, candidate)
		}
	}

	return eligible
}

// Next picks uniformly at random among the eligible steps. Returns nil
// when nothing is eligible.
func (s *Scheduler) Next(p *plan.Plan) plan.Step {
	eligible := s.Eligible(p)
	if len(eligible) == 0 {
		return nil
	}
	return eligible[s.rng.Intn(len(eligible))]
}
