// Package plan models a declarative plan: named steps with precondition
// edges plus the variable store their payloads draw on.
package plan

import (
	"fmt"
	"sort"
)

// Plan is the container for steps and variables. It exclusively owns both;
// steps reference each other only by name.
type Plan struct {
	source string
	steps  map[string]Step
	vars   map[string]string
}

// New creates an empty Plan. The source reference records where the static
// definition came from so a checkpoint can find its way back.
func New(source string) *Plan {
	return &Plan{
		source: source,
		steps:  make(map[string]Step),
		vars:   make(map[string]string),
	}
}

// Source returns the plan's source reference.
func (p *Plan) Source() string {
	return p.source
}

// Len returns the number of steps.
func (p *Plan) Len() int {
	return len(p.steps)
}

// AddStep adds a step. Returns ErrDuplicateStep if the name is taken.
func (p *Plan) AddStep(s Step) error {
	if _, exists := p.steps[s.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateStep, s.Name())
	}
	p.steps[s.Name()] = s
	return nil
}

// Step retrieves a step by name.
func (p *Plan) Step(name string) (Step, bool) {
	s, ok := p.steps[name]
	return s, ok
}

// Steps returns all steps sorted by name.
func (p *Plan) Steps() []Step {
	names := make([]string, 0, len(p.steps))
	for name := range p.steps {
		names = append(names, name)
	}
	sort.Strings(names)

	steps := make([]Step, 0, len(names))
	for _, name := range names {
		steps = append(steps, p.steps[name])
	}
	return steps
}

// AddVariable declares a variable. Declaring is the only way a variable
// comes into existence; assignment later never creates one.
func (p *Plan) AddVariable(name, value string) {
	p.vars[name] = value
}

// SetValue assigns a declared variable. Returns ErrUnknownVariable if the
// plan never declared the name.
func (p *Plan) SetValue(name, value string) error {
	if _, ok := p.vars[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	p.vars[name] = value
	return nil
}

// Value returns a variable's current value and whether it is declared.
func (p *Plan) Value(name string) (string, bool) {
	v, ok := p.vars[name]
	return v, ok
}

// Variables returns a copy of the variable store.
func (p *Plan) Variables() map[string]string {
	out := make(map[string]string, len(p.vars))
	for k, v := range p.vars {
		out[k] = v
	}
	return out
}

// ResetFailed moves every failed step back to pending. Run calls this on
// entry so a checkpointed failure can be retried verbatim.
func (p *Plan) ResetFailed() {
	for _, s := range p.steps {
		if s.State() == StateFailed {
			s.Reset()
		}
	}
}

// AnyFailed returns true if any step is in the failed state.
func (p *Plan) AnyFailed() bool {
	for _, s := range p.steps {
		if s.State() == StateFailed {
			return true
		}
	}
	return false
}

// Validate checks the predecessor relation for structural problems: edges
// pointing at steps the plan does not contain, and steps that are their
// own transitive predecessor. It has no side effects; steps with no
// predecessors and isolated components are trivially fine.
func (p *Plan) Validate() error {
	for name, s := range p.steps {
		visited := make(map[string]struct{})
		if err := p.walk(name, s.Predecessors(), visited); err != nil {
			return err
		}
	}
	return nil
}

// WellFormed reports whether Validate found nothing to complain about.
func (p *Plan) WellFormed() bool {
	return p.Validate() == nil
}

// walk follows the predecessor chain looking for the start name. The
// visited set keeps cycles that do not pass through start from recursing
// forever; they are still reported when their own member is the start.
func (p *Plan) walk(start string, names []string, visited map[string]struct{}) error {
	for _, name := range names {
		if name == start {
			return fmt.Errorf("%w: step %q", ErrCyclicDependency, start)
		}
		if _, seen := visited[name]; seen {
			continue
		}
		visited[name] = struct{}{}

		pred, ok := p.steps[name]
		if !ok {
			return fmt.Errorf("%w: %q references %q", ErrMissingPredecessor, start, name)
		}
		if err := p.walk(start, pred.Predecessors(), visited); err != nil {
			return err
		}
	}
	return nil
}
