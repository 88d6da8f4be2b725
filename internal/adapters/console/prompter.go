// Package console provides the line-oriented interactive prompter.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/runbook/internal/ports"
)

// Styles for operator-facing output.
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"})
	styleText = lipgloss.NewStyle().
			PaddingLeft(4)
	stylePrompt = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"})
)

// Prompter asks the operator questions over a line-oriented stream,
// normally stdin/stdout. Reads block until a full line arrives; an EOF
// means the input channel is gone and is reported as an error, never as
// a negative answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter on stdin/stdout.
func NewPrompter() *Prompter {
	return NewPrompterWithIO(os.Stdin, os.Stdout)
}

// NewPrompterWithIO creates a prompter on the given streams.
func NewPrompterWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Say presents a step header and its explanatory text.
func (p *Prompter) Say(header, text string) {
	_, _ = fmt.Fprintln(p.out, styleHeader.Render(fmt.Sprintf("---[ %s ]---------------------", header)))
	if text != "" {
		_, _ = fmt.Fprintln(p.out, styleText.Render(text))
	}
}

// Confirm asks a yes/no question. Only y/yes/t/true count as yes.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := p.ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return affirmative(answer), nil
}

// Input asks for a free-form value.
func (p *Prompter) Input(ctx context.Context, prompt string) (string, error) {
	return p.ask(ctx, prompt)
}

func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	_, _ = fmt.Fprint(p.out, stylePrompt.Render(prompt)+" ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// affirmative parses a "did this succeed" answer. Only an explicit yes
// counts.
func affirmative(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes", "t", "true":
		return true
	default:
		return false
	}
}

// Ensure Prompter implements ports.Prompter.
var _ ports.Prompter = (*Prompter)(nil)
