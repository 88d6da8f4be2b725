package ports

import "context"

// Prompter obtains interactive answers from the operator.
//
// Implementations block until input arrives; cancellation happens through
// the context. An error means the input channel itself is gone (EOF on
// stdin), not that the operator declined.
type Prompter interface {
	// Say presents a step header and explanatory text before a question.
	Say(header, text string)

	// Confirm asks a yes/no question and reports whether the answer was
	// affirmative. Only y/yes/t/true (case-insensitive) count as yes.
	Confirm(ctx context.Context, prompt string) (bool, error)

	// Input asks for a free-form value. An empty answer means "keep the
	// offered default".
	Input(ctx context.Context, prompt string) (string, error)
}
