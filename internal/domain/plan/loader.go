package plan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrVariableUnnamed is a configuration error: a variable declaration
// without a name.
var ErrVariableUnnamed = errors.New("variable has no name")

// VariableDecl is one entry of a definition's variables list.
type VariableDecl struct {
	Name  string  `yaml:"name"`
	Value *string `yaml:"value,omitempty"`
}

// Definition is the parsed static form of a plan document.
type Definition struct {
	Variables []VariableDecl `yaml:"variables"`
	Actions   []Descriptor   `yaml:"actions"`
}

// ParseDefinition decodes a plan definition document.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse plan definition: %w", err)
	}
	return &def, nil
}

// Build constructs a Plan from the definition. Variables are declared
// first so assign steps can be validated against them later; steps are
// built through the kind-inferring factory.
func (d *Definition) Build(source string) (*Plan, error) {
	p := New(source)

	for _, v := range d.Variables {
		if v.Name == "" {
			return nil, ErrVariableUnnamed
		}
		p.AddVariable(v.Name, deref(v.Value))
	}

	for _, a := range d.Actions {
		step, err := BuildStep(a)
		if err != nil {
			return nil, err
		}
		if err := p.AddStep(step); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Load reads and builds a plan definition from a file. The path becomes
// the plan's source reference.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, err
	}
	return def.Build(path)
}
