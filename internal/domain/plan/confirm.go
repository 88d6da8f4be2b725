package plan

import "fmt"

// defaultPrompt is asked when a confirm step declares text but no prompt.
const defaultPrompt = "Done?"

// ConfirmStep presents explanatory text and asks the operator a yes/no
// question. An affirmative answer completes the step, anything else fails
// it. Prompts should be phrased so that "yes" means success.
type ConfirmStep struct {
	core
	text   string
	prompt string
}

// NewConfirmStep creates a confirm step.
func NewConfirmStep(name string, after []string, text, prompt string) *ConfirmStep {
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &ConfirmStep{
		core:   newCore(name, after),
		text:   text,
		prompt: prompt,
	}
}

// Kind returns KindConfirm.
func (s *ConfirmStep) Kind() Kind {
	return KindConfirm
}

// Text returns the unexpanded explanatory text.
func (s *ConfirmStep) Text() string {
	return s.text
}

// Run expands the text, presents it, and records the answer.
func (s *ConfirmStep) Run(rctx RunContext, p *Plan) error {
	if err := s.begin(); err != nil {
		return err
	}

	text, err := p.Expand(s.text)
	if err != nil {
		return fmt.Errorf("step %q: %w", s.name, err)
	}

	prompter := rctx.Prompter()
	prompter.Say(s.name, text)

	yes, err := prompter.Confirm(rctx.Context(), s.prompt)
	if err != nil {
		// The input channel is gone; nothing sensible to record.
		return fmt.Errorf("step %q: %w", s.name, err)
	}

	if yes {
		s.MarkDone()
	} else {
		s.MarkFailed()
	}
	return nil
}
