// Package command provides the exec-backed command runner.
package command

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// ExecRunner invokes commands through os/exec. Output is streamed to the
// operator's terminal while also being captured, since plan commands are
// frequently interactive-adjacent (progress bars, confirmation output).
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner creates a runner streaming to the process stdout/stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{stdout: os.Stdout, stderr: os.Stderr}
}

// WithOutput returns a runner streaming to the given writers. Tests use
// this to keep command noise out of the test log.
func (r *ExecRunner) WithOutput(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

// Run executes a command and returns its result. A nonzero exit status is
// a normal result; only an unrunnable command (not found, not executable)
// is an error.
func (r *ExecRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = io.MultiWriter(r.stdout, &stdout)
	cmd.Stderr = io.MultiWriter(r.stderr, &stderr)
	cmd.Stdin = os.Stdin

	err := cmd.Run()

	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// Ensure ExecRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*ExecRunner)(nil)
