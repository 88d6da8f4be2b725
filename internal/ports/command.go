// Package ports defines interfaces for external dependencies.
package ports

import "context"

// CommandResult represents the result of invoking an external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner invokes external commands on behalf of a step.
//
// A nonzero exit status is reported through CommandResult, not through the
// error return. The error return is reserved for the command being
// unrunnable at all (not found, not executable, context canceled).
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}
