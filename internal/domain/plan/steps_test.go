package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// fakePrompter scripts interactive answers.
type fakePrompter struct {
	confirmAnswer bool
	inputAnswer   string
	err           error

	headers []string
	texts   []string
	prompts []string
}

func (f *fakePrompter) Say(header, text string) {
	f.headers = append(f.headers, header)
	f.texts = append(f.texts, text)
}

func (f *fakePrompter) Confirm(_ context.Context, prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.confirmAnswer, f.err
}

func (f *fakePrompter) Input(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.inputAnswer, f.err
}

// fakeRunner scripts command results.
type fakeRunner struct {
	exitCode int
	err      error
	calls    [][]string
}

func (f *fakeRunner) Run(_ context.Context, command string, args ...string) (ports.CommandResult, error) {
	f.calls = append(f.calls, append([]string{command}, args...))
	if f.err != nil {
		return ports.CommandResult{}, f.err
	}
	return ports.CommandResult{ExitCode: f.exitCode}, nil
}

func testContext(pr ports.Prompter, cr ports.CommandRunner) RunContext {
	return NewRunContext(context.Background()).WithPrompter(pr).WithCommands(cr)
}

func TestConfirmStep_Run(t *testing.T) {
	tests := []struct {
		name   string
		answer bool
		want   State
	}{
		{"affirmative completes", true, StateDone},
		{"negative fails", false, StateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("test.yaml")
			p.AddVariable("host", "db1")
			step := NewConfirmStep("check", nil, "look at ${host}", "")
			pr := &fakePrompter{confirmAnswer: tt.answer}

			if err := step.Run(testContext(pr, nil), p); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if step.State() != tt.want {
				t.Errorf("State() = %v, want %v", step.State(), tt.want)
			}
			if len(pr.texts) != 1 || pr.texts[0] != "look at db1" {
				t.Errorf("presented text = %v, want expanded text", pr.texts)
			}
			if pr.prompts[0] != "Done?" {
				t.Errorf("prompt = %q, want default prompt", pr.prompts[0])
			}
		})
	}
}

func TestConfirmStep_PrompterLossIsFatal(t *testing.T) {
	p := New("test.yaml")
	step := NewConfirmStep("check", nil, "text", "")
	pr := &fakePrompter{err: errors.New("stdin closed")}

	if err := step.Run(testContext(pr, nil), p); err == nil {
		t.Fatal("Run() error = nil, want input error")
	}
	if step.State() != StatePending {
		t.Errorf("State() = %v, want PENDING on fatal input loss", step.State())
	}
}

func TestCommandStep_Run(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		runErr   error
		want     State
	}{
		{"zero exit completes", 0, nil, StateDone},
		{"nonzero exit fails", 2, nil, StateFailed},
		{"command not found fails", 0, errors.New("exec: not found"), StateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("test.yaml")
			p.AddVariable("target", "all")
			step := NewCommandStep("build", nil, "make ${target}")
			cr := &fakeRunner{exitCode: tt.exitCode, err: tt.runErr}

			if err := step.Run(testContext(nil, cr), p); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if step.State() != tt.want {
				t.Errorf("State() = %v, want %v", step.State(), tt.want)
			}
			if len(cr.calls) != 1 {
				t.Fatalf("command invoked %d times, want 1", len(cr.calls))
			}
			if cr.calls[0][0] != "make" || cr.calls[0][1] != "all" {
				t.Errorf("invoked %v, want expanded argv", cr.calls[0])
			}
		})
	}
}

func TestCommandStep_DryRunSkipsInvocation(t *testing.T) {
	p := New("test.yaml")
	step := NewCommandStep("build", nil, "make all")
	cr := &fakeRunner{exitCode: 1}

	rctx := testContext(nil, cr).WithDryRun(true)
	if err := step.Run(rctx, p); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if step.State() != StateDone {
		t.Errorf("State() = %v, want DONE in dry-run", step.State())
	}
	if len(cr.calls) != 0 {
		t.Errorf("command invoked %d times in dry-run, want 0", len(cr.calls))
	}
}

func TestCommandStep_EmptyExpansionFails(t *testing.T) {
	p := New("test.yaml")
	p.AddVariable("cmd", "")
	step := NewCommandStep("build", nil, "${cmd}")
	cr := &fakeRunner{}

	if err := step.Run(testContext(nil, cr), p); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if step.State() != StateFailed {
		t.Errorf("State() = %v, want FAILED", step.State())
	}
	if len(cr.calls) != 0 {
		t.Error("nothing should be invoked for an empty command")
	}
}

func TestAssignStep_Run(t *testing.T) {
	t.Run("default kept on empty answer", func(t *testing.T) {
		p := New("test.yaml")
		p.AddVariable("release", "")
		p.AddVariable("base", "v1")
		step := NewAssignStep("pick", nil, "release", "${base}.2")
		pr := &fakePrompter{inputAnswer: ""}

		if err := step.Run(testContext(pr, nil), p); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if step.State() != StateDone {
			t.Errorf("State() = %v, want DONE", step.State())
		}
		if v, _ := p.Value("release"); v != "v1.2" {
			t.Errorf("release = %q, want expanded default", v)
		}
	})

	t.Run("override wins", func(t *testing.T) {
		p := New("test.yaml")
		p.AddVariable("release", "")
		step := NewAssignStep("pick", nil, "release", "v1")
		pr := &fakePrompter{inputAnswer: "v2"}

		if err := step.Run(testContext(pr, nil), p); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if v, _ := p.Value("release"); v != "v2" {
			t.Errorf("release = %q, want override", v)
		}
	})

	t.Run("undeclared variable fails the step", func(t *testing.T) {
		p := New("test.yaml")
		step := NewAssignStep("pick", nil, "ghost", "v1")
		pr := &fakePrompter{}

		if err := step.Run(testContext(pr, nil), p); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if step.State() != StateFailed {
			t.Errorf("State() = %v, want FAILED", step.State())
		}
		if _, ok := p.Value("ghost"); ok {
			t.Error("assignment must never create the variable")
		}
	})
}

func TestSteps_DoubleRunIsFatal(t *testing.T) {
	p := New("test.yaml")
	p.AddVariable("x", "")
	pr := &fakePrompter{confirmAnswer: true}
	cr := &fakeRunner{}
	rctx := testContext(pr, cr)

	steps := []Step{
		NewConfirmStep("c", nil, "t", ""),
		NewCommandStep("cmd", nil, "ls"),
		NewAssignStep("a", nil, "x", "v"),
	}

	for _, s := range steps {
		if err := s.Run(rctx, p); err != nil {
			t.Fatalf("first Run(%s) error = %v", s.Name(), err)
		}
		if err := s.Run(rctx, p); !errors.Is(err, ErrDoubleRun) {
			t.Errorf("second Run(%s) error = %v, want ErrDoubleRun", s.Name(), err)
		}
	}

	// Also fatal when the state was forced, regardless of kind.
	forced := NewConfirmStep("f", nil, "t", "")
	forced.MarkFailed()
	if err := forced.Run(rctx, p); !errors.Is(err, ErrDoubleRun) {
		t.Errorf("Run() on FAILED step error = %v, want ErrDoubleRun", err)
	}
}
