package plan

import (
	"fmt"
	"strings"
)

// maxExpansions bounds how many placeholder substitutions a single Expand
// call may perform. A variable whose value reintroduces its own
// placeholder would otherwise loop forever.
const maxExpansions = 64

// Expand replaces ${name} placeholders in text with the current variable
// values, rescanning after each substitution so values may themselves
// contain placeholders. An undefined name expands to the empty string. An
// opening marker with no closing brace leaves the remainder of the text
// untouched. Exceeding the substitution bound is an error, not a silent
// truncation.
func (p *Plan) Expand(text string) (string, error) {
	for i := 0; i < maxExpansions; i++ {
		start := strings.Index(text, "${")
		if start < 0 {
			return text, nil
		}
		end := strings.Index(text[start:], "}")
		if end < 0 {
			// Malformed placeholder, leave the rest alone.
			return text, nil
		}
		end += start

		name := text[start+2 : end]
		value := p.vars[name] // undefined resolves to ""
		text = text[:start] + value + text[end+1:]
	}
	return "", fmt.Errorf("%w after %d substitutions", ErrExpansionDepth, maxExpansions)
}
