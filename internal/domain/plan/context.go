package plan

import (
	"context"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// RunContext provides everything a step may touch while running: the
// cancellation context, the dry-run flag, and the collaborators for
// interactive input and external commands.
//
// It is passed into Step.Run explicitly instead of being stored on the
// step, so steps hold no back-pointer to their plan or environment.
type RunContext struct {
	ctx      context.Context
	dryRun   bool
	prompter ports.Prompter
	commands ports.CommandRunner
	logger   ports.Logger
}

// NewRunContext creates a RunContext with the given context.
func NewRunContext(ctx context.Context) RunContext {
	return RunContext{ctx: ctx}
}

// Context returns the underlying context.Context.
func (r RunContext) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// DryRun returns whether this is a dry-run execution.
func (r RunContext) DryRun() bool {
	return r.dryRun
}

// Prompter returns the interactive input collaborator.
func (r RunContext) Prompter() ports.Prompter {
	return r.prompter
}

// Commands returns the external command collaborator.
func (r RunContext) Commands() ports.CommandRunner {
	return r.commands
}

// Logger returns the logger, never nil.
func (r RunContext) Logger() ports.Logger {
	if r.logger == nil {
		return nopLogger{}
	}
	return r.logger
}

// WithDryRun returns a copy with the dry-run flag set.
func (r RunContext) WithDryRun(dryRun bool) RunContext {
	r.dryRun = dryRun
	return r
}

// WithPrompter returns a copy with the prompter set.
func (r RunContext) WithPrompter(p ports.Prompter) RunContext {
	r.prompter = p
	return r
}

// WithCommands returns a copy with the command runner set.
func (r RunContext) WithCommands(c ports.CommandRunner) RunContext {
	r.commands = c
	return r
}

// WithLogger returns a copy with the logger set.
func (r RunContext) WithLogger(l ports.Logger) RunContext {
	r.logger = l
	return r
}

// nopLogger keeps RunContext.Logger total without dragging the logging
// adapter into the domain.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...ports.Field) {}
func (nopLogger) Info(context.Context, string, ...ports.Field)  {}
func (nopLogger) Warn(context.Context, string, ...ports.Field)  {}
func (nopLogger) Error(context.Context, string, ...ports.Field) {}
func (n nopLogger) With(...ports.Field) ports.Logger            { return n }
