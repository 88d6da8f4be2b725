// Package app wires the plan domain to its adapters and implements the
// command-level behavior: load, run, resume, graph, and the
// checkpoint-on-failure policy.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/runbook/internal/adapters/command"
	"github.com/felixgeelhaar/runbook/internal/adapters/console"
	"github.com/felixgeelhaar/runbook/internal/adapters/logging"
	"github.com/felixgeelhaar/runbook/internal/domain/execution"
	"github.com/felixgeelhaar/runbook/internal/domain/plan"
	"github.com/felixgeelhaar/runbook/internal/domain/state"
	"github.com/felixgeelhaar/runbook/internal/ports"
)

// Errors reported to the command layer.
var (
	// ErrRunFailed means at least one step ended failed and nothing
	// further was eligible. A checkpoint has been written.
	ErrRunFailed = errors.New("plan execution failed")
	// ErrInterrupted means the operator stopped the run. State is left
	// as last recorded; no checkpoint is written.
	ErrInterrupted = errors.New("execution interrupted")
	// ErrNotStateDocument means resume was pointed at a plan definition.
	ErrNotStateDocument = errors.New("not a state document")
)

// Runbook is the application facade used by the CLI.
type Runbook struct {
	out      io.Writer
	logger   ports.Logger
	prompter ports.Prompter
	commands ports.CommandRunner
	runner   *execution.Runner
	store    *state.Store
	dryRun   bool
}

// New creates a Runbook with production adapters, writing operator output
// to out.
func New(out io.Writer) *Runbook {
	logger := logging.NewConsoleLogger()
	return &Runbook{
		out:      out,
		logger:   logger,
		prompter: console.NewPrompterWithIO(os.Stdin, out),
		commands: command.NewExecRunner(),
		runner:   execution.NewRunner(logger),
		store:    state.NewStore(""),
	}
}

// WithLogger returns a copy using the given logger.
func (r *Runbook) WithLogger(l ports.Logger) *Runbook {
	c := *r
	c.logger = l
	c.runner = execution.NewRunner(l)
	return &c
}

// WithPrompter returns a copy using the given prompter.
func (r *Runbook) WithPrompter(p ports.Prompter) *Runbook {
	c := *r
	c.prompter = p
	return &c
}

// WithCommands returns a copy using the given command runner.
func (r *Runbook) WithCommands(cr ports.CommandRunner) *Runbook {
	c := *r
	c.commands = cr
	return &c
}

// WithScheduler returns a copy whose runner uses the given scheduler.
func (r *Runbook) WithScheduler(s *execution.Scheduler) *Runbook {
	c := *r
	c.runner = c.runner.WithScheduler(s)
	return &c
}

// WithStore returns a copy writing checkpoints through the given store.
func (r *Runbook) WithStore(s *state.Store) *Runbook {
	c := *r
	c.store = s
	return &c
}

// WithDryRun returns a copy that never invokes commands.
func (r *Runbook) WithDryRun(dryRun bool) *Runbook {
	c := *r
	c.dryRun = dryRun
	return &c
}

// Load reads a file and builds a plan from it. A state document (spotted
// by its plan field) restores the referenced definition with the saved
// overlay; anything else is parsed as a plan definition.
func (r *Runbook) Load(path string) (*plan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if state.IsDocument(data) {
		doc, err := state.Parse(data)
		if err != nil {
			return nil, err
		}
		return state.Restore(doc)
	}

	def, err := plan.ParseDefinition(data)
	if err != nil {
		return nil, err
	}
	return def.Build(path)
}

// Run loads the file and drives the plan to quiescence.
func (r *Runbook) Run(ctx context.Context, path string) error {
	p, err := r.Load(path)
	if err != nil {
		return err
	}
	return r.execute(ctx, p)
}

// Resume restores a plan from a state document and continues it.
// Previously failed steps are reset by the runner before anything is
// scheduled.
func (r *Runbook) Resume(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !state.IsDocument(data) {
		return fmt.Errorf("%w: %s", ErrNotStateDocument, path)
	}

	doc, err := state.Parse(data)
	if err != nil {
		return err
	}
	p, err := state.Restore(doc)
	if err != nil {
		return err
	}
	return r.execute(ctx, p)
}

// Graph loads the file (definition or state document) and writes the
// dependency graph as DOT.
func (r *Runbook) Graph(path string, w io.Writer) error {
	p, err := r.Load(path)
	if err != nil {
		return err
	}
	return p.WriteDOT(w)
}

func (r *Runbook) execute(ctx context.Context, p *plan.Plan) error {
	rctx := plan.NewRunContext(ctx).
		WithDryRun(r.dryRun).
		WithPrompter(r.prompter).
		WithCommands(r.commands).
		WithLogger(r.logger)

	report, err := r.runner.Run(rctx, p)
	if err != nil {
		return err
	}

	if report.Interrupted {
		_, _ = fmt.Fprintln(r.out, "\nInterrupted; state left as last recorded.")
		return ErrInterrupted
	}

	if report.Succeeded {
		_, _ = fmt.Fprintf(r.out, "\nPlan complete, %d step(s) executed.\n", report.Executed)
		return nil
	}

	checkpoint, err := r.store.Save(state.Capture(p))
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	_, _ = fmt.Fprintf(r.out, "\nExecution failed, you can resume by running\n\trunbook resume %s\n", checkpoint)
	return ErrRunFailed
}
