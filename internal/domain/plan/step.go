package plan

import "fmt"

// Kind identifies the behavior of a step. The closed set of kinds is
// determined at construction time from the keys present in a descriptor.
type Kind string

const (
	// KindConfirm presents text and asks for a yes/no answer.
	KindConfirm Kind = "confirm"
	// KindCommand invokes an external command.
	KindCommand Kind = "command"
	// KindAssign sets a declared variable.
	KindAssign Kind = "assign"
)

// Step is one executable unit of a plan.
//
// Run performs the step's effect and transitions it to exactly one of
// StateDone or StateFailed. A step failure is recorded in the state, not
// returned as an error; the error return is reserved for fatal conditions
// (double execution, expansion depth, lost input channel).
type Step interface {
	// Name returns the unique identifier of the step. Predecessor edges
	// reference steps by this name.
	Name() string

	// Kind returns the step's behavior kind.
	Kind() Kind

	// State returns the current lifecycle state.
	State() State

	// Predecessors returns the names of steps that must be done before
	// this one is eligible.
	Predecessors() []string

	// Run executes the step against the given plan.
	Run(rctx RunContext, p *Plan) error

	// MarkDone forces the state to done. Used by restore.
	MarkDone()

	// MarkFailed forces the state to failed. Used by restore.
	MarkFailed()

	// Reset moves the step back to pending.
	Reset()
}

// core carries the identity, state, and edges shared by every step kind.
type core struct {
	name  string
	state State
	after []string
}

func newCore(name string, after []string) core {
	return core{
		name:  name,
		state: StatePending,
		after: dedupe(after),
	}
}

// Name returns the unique identifier of the step.
func (c *core) Name() string {
	return c.name
}

// State returns the current lifecycle state.
func (c *core) State() State {
	return c.state
}

// Predecessors returns the names of steps that must be done first.
func (c *core) Predecessors() []string {
	return c.after
}

// MarkDone forces the state to done.
func (c *core) MarkDone() {
	c.state = StateDone
}

// MarkFailed forces the state to failed.
func (c *core) MarkFailed() {
	c.state = StateFailed
}

// Reset moves the step back to pending.
func (c *core) Reset() {
	c.state = StatePending
}

// begin enforces at-most-once execution. Every kind calls it first thing
// in Run, before any side effect.
func (c *core) begin() error {
	if c.state != StatePending {
		return fmt.Errorf("step %q: %w", c.name, ErrDoubleRun)
	}
	return nil
}

// dedupe collapses duplicate predecessor names, keeping first occurrence
// order. Edge order is irrelevant to eligibility but stable output keeps
// the graph export deterministic.
func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
