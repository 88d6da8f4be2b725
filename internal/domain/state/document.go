// Package state captures and reapplies a plan's mutable state: step
// states and variable values, paired with a reference back to the static
// definition.
package state

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/runbook/internal/domain/plan"
)

// ErrMismatch is returned when a state document names a step or variable
// the freshly loaded definition does not contain. Overlays only update
// states and values, never the shape of the plan.
var ErrMismatch = errors.New("state document does not match plan definition")

// ActionState records one step's state at snapshot time.
type ActionState struct {
	Name  string     `yaml:"name"`
	State plan.State `yaml:"state"`
}

// Document is the checkpoint schema. The presence of the plan field is
// what distinguishes a state document from a plan definition.
type Document struct {
	Plan      string            `yaml:"plan"`
	Actions   []ActionState     `yaml:"actions"`
	Variables map[string]string `yaml:"variables"`
}

// Capture snapshots the plan's current step states and variable values.
func Capture(p *plan.Plan) Document {
	steps := p.Steps()
	actions := make([]ActionState, 0, len(steps))
	for _, s := range steps {
		actions = append(actions, ActionState{Name: s.Name(), State: s.State()})
	}

	return Document{
		Plan:      p.Source(),
		Actions:   actions,
		Variables: p.Variables(),
	}
}

// Apply overlays the document onto a freshly loaded plan. Done and failed
// states are applied; anything else leaves the step at its fresh pending
// default. Variable values are overwritten. Unknown names are fatal.
func (d Document) Apply(p *plan.Plan) error {
	for _, a := range d.Actions {
		step, ok := p.Step(a.Name)
		if !ok {
			return fmt.Errorf("%w: unknown step %q", ErrMismatch, a.Name)
		}
		switch a.State {
		case plan.StateDone:
			step.MarkDone()
		case plan.StateFailed:
			step.MarkFailed()
		}
	}

	for name, value := range d.Variables {
		if err := p.SetValue(name, value); err != nil {
			return fmt.Errorf("%w: unknown variable %q", ErrMismatch, name)
		}
	}

	return nil
}

// Restore reloads the plan from the document's source reference and
// applies the overlay.
func Restore(d Document) (*plan.Plan, error) {
	p, err := plan.Load(d.Plan)
	if err != nil {
		return nil, err
	}
	if err := d.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse decodes a state document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse state document: %w", err)
	}
	return doc, nil
}

// Marshal encodes the document as YAML.
func (d Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// IsDocument reports whether the data looks like a state document rather
// than a plan definition, keyed off the plan field.
func IsDocument(data []byte) bool {
	var probe map[string]interface{}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false
	}
	_, ok := probe["plan"]
	return ok
}
