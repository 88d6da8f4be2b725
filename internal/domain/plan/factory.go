package plan

import "fmt"

// Descriptor is the unordered key-set describing one action in a plan
// document. Which keys are present determines the step kind; the fields
// are pointers so presence is distinguishable from an empty value.
type Descriptor struct {
	Name     string   `yaml:"name"`
	Text     *string  `yaml:"text,omitempty"`
	Prompt   *string  `yaml:"prompt,omitempty"`
	Command  *string  `yaml:"command,omitempty"`
	Variable *string  `yaml:"variable,omitempty"`
	Default  *string  `yaml:"default,omitempty"`
	After    []string `yaml:"after,omitempty"`
}

// BuildStep infers the step kind from the descriptor's keys and constructs
// the step. Command keys make a command step, variable keys an assign
// step, text or prompt keys a confirm step. Keys spanning more than one
// kind, no keys matching any kind, or a missing name are configuration
// errors, raised here rather than at run time.
func BuildStep(d Descriptor) (Step, error) {
	if d.Name == "" {
		return nil, ErrActionUnnamed
	}

	isCommand := d.Command != nil
	isAssign := d.Variable != nil || d.Default != nil
	isConfirm := d.Text != nil || d.Prompt != nil

	matched := 0
	for _, m := range []bool{isCommand, isAssign, isConfirm} {
		if m {
			matched++
		}
	}
	switch {
	case matched == 0:
		return nil, fmt.Errorf("%w: %q", ErrActionUnknown, d.Name)
	case matched > 1:
		return nil, fmt.Errorf("%w: %q", ErrActionAmbiguous, d.Name)
	}

	switch {
	case isCommand:
		return NewCommandStep(d.Name, d.After, deref(d.Command)), nil
	case isAssign:
		return NewAssignStep(d.Name, d.After, deref(d.Variable), deref(d.Default)), nil
	default:
		return NewConfirmStep(d.Name, d.After, deref(d.Text), deref(d.Prompt)), nil
	}
}

// deref turns an absent payload into empty text.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
