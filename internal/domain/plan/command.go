package plan

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// CommandStep invokes an external command. Exit status zero completes the
// step; a nonzero status or an unrunnable command fails it. In dry-run
// mode the command is not invoked and the step completes immediately.
type CommandStep struct {
	core
	command string
}

// NewCommandStep creates a command step.
func NewCommandStep(name string, after []string, command string) *CommandStep {
	return &CommandStep{
		core:    newCore(name, after),
		command: command,
	}
}

// Kind returns KindCommand.
func (s *CommandStep) Kind() Kind {
	return KindCommand
}

// Command returns the unexpanded command line.
func (s *CommandStep) Command() string {
	return s.command
}

// Run expands and invokes the command line.
func (s *CommandStep) Run(rctx RunContext, p *Plan) error {
	if err := s.begin(); err != nil {
		return err
	}

	cmdline, err := p.Expand(s.command)
	if err != nil {
		return fmt.Errorf("step %q: %w", s.name, err)
	}

	log := rctx.Logger()
	ctx := rctx.Context()

	if rctx.DryRun() {
		log.Info(ctx, "dry-run, command not invoked",
			ports.F("step", s.name), ports.F("command", cmdline))
		s.MarkDone()
		return nil
	}

	argv := strings.Fields(cmdline)
	if len(argv) == 0 {
		log.Warn(ctx, "command expanded to nothing", ports.F("step", s.name))
		s.MarkFailed()
		return nil
	}

	log.Info(ctx, "running command",
		ports.F("step", s.name), ports.F("command", cmdline))

	result, err := rctx.Commands().Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		// Command not found or otherwise unrunnable: a step failure,
		// not a fatal condition.
		log.Warn(ctx, "command could not run",
			ports.F("step", s.name), ports.F("error", err))
		s.MarkFailed()
		return nil
	}

	if result.Success() {
		s.MarkDone()
	} else {
		log.Warn(ctx, "command exited nonzero",
			ports.F("step", s.name), ports.F("exit", result.ExitCode))
		s.MarkFailed()
	}
	return nil
}
