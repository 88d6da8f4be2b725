package plan

import (
	"errors"
	"testing"
)

func strp(s string) *string { return &s }

func TestBuildStep_KindInference(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want Kind
	}{
		{"command key", Descriptor{Name: "a", Command: strp("ls")}, KindCommand},
		{"variable key", Descriptor{Name: "a", Variable: strp("x")}, KindAssign},
		{"default key alone", Descriptor{Name: "a", Default: strp("v")}, KindAssign},
		{"text key", Descriptor{Name: "a", Text: strp("read this")}, KindConfirm},
		{"prompt key alone", Descriptor{Name: "a", Prompt: strp("ok?")}, KindConfirm},
		{"text and prompt", Descriptor{Name: "a", Text: strp("t"), Prompt: strp("p")}, KindConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := BuildStep(tt.desc)
			if err != nil {
				t.Fatalf("BuildStep() error = %v", err)
			}
			if step.Kind() != tt.want {
				t.Errorf("Kind() = %v, want %v", step.Kind(), tt.want)
			}
			if step.State() != StatePending {
				t.Errorf("State() = %v, want PENDING", step.State())
			}
		})
	}
}

func TestBuildStep_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want error
	}{
		{"no name", Descriptor{Command: strp("ls")}, ErrActionUnnamed},
		{"no kind keys", Descriptor{Name: "a"}, ErrActionUnknown},
		{"command and variable", Descriptor{Name: "a", Command: strp("ls"), Variable: strp("x")}, ErrActionAmbiguous},
		{"command and text", Descriptor{Name: "a", Command: strp("ls"), Text: strp("t")}, ErrActionAmbiguous},
		{"variable and prompt", Descriptor{Name: "a", Variable: strp("x"), Prompt: strp("p")}, ErrActionAmbiguous},
		{"all three", Descriptor{Name: "a", Command: strp("ls"), Variable: strp("x"), Text: strp("t")}, ErrActionAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStep(tt.desc)
			if !errors.Is(err, tt.want) {
				t.Fatalf("BuildStep() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildStep_PreservesEdges(t *testing.T) {
	step, err := BuildStep(Descriptor{
		Name:    "deploy",
		Command: strp("make deploy"),
		After:   []string{"build", "test"},
	})
	if err != nil {
		t.Fatalf("BuildStep() error = %v", err)
	}
	got := step.Predecessors()
	if len(got) != 2 || got[0] != "build" || got[1] != "test" {
		t.Errorf("Predecessors() = %v, want [build test]", got)
	}
}
