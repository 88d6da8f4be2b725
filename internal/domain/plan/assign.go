package plan

import (
	"fmt"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// AssignStep sets a declared variable. The expanded default is offered to
// the operator, who may override it; an empty answer keeps the default.
// Assigning a name the plan never declared fails the step, it never
// creates the variable.
type AssignStep struct {
	core
	variable     string
	defaultValue string
}

// NewAssignStep creates an assign step.
func NewAssignStep(name string, after []string, variable, defaultValue string) *AssignStep {
	return &AssignStep{
		core:         newCore(name, after),
		variable:     variable,
		defaultValue: defaultValue,
	}
}

// Kind returns KindAssign.
func (s *AssignStep) Kind() Kind {
	return KindAssign
}

// Variable returns the name of the variable this step assigns.
func (s *AssignStep) Variable() string {
	return s.variable
}

// Run expands the default, obtains an optional override, and assigns.
func (s *AssignStep) Run(rctx RunContext, p *Plan) error {
	if err := s.begin(); err != nil {
		return err
	}

	value, err := p.Expand(s.defaultValue)
	if err != nil {
		return fmt.Errorf("step %q: %w", s.name, err)
	}

	prompter := rctx.Prompter()
	prompter.Say(s.name, fmt.Sprintf("Setting the value of variable %s", s.variable))

	answer, err := prompter.Input(rctx.Context(),
		fmt.Sprintf("Provide a value for %s (enter keeps %q)", s.variable, value))
	if err != nil {
		return fmt.Errorf("step %q: %w", s.name, err)
	}
	if answer != "" {
		value = answer
	}

	if err := p.SetValue(s.variable, value); err != nil {
		rctx.Logger().Warn(rctx.Context(), "assignment to undeclared variable",
			ports.F("step", s.name), ports.F("variable", s.variable))
		s.MarkFailed()
		return nil
	}

	s.MarkDone()
	return nil
}
