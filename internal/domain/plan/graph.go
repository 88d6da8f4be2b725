package plan

import (
	"fmt"
	"io"
	"strings"
)

// Node shapes keyed by step kind and fill colors keyed by state. The
// synthetic start and end nodes get their own fixed shapes.
func shapeFor(k Kind) string {
	switch k {
	case KindConfirm:
		return "note"
	case KindAssign:
		return "polygon"
	case KindCommand:
		return "component"
	default:
		return "box"
	}
}

func colorFor(s State) string {
	switch s {
	case StateDone:
		return "green"
	case StateFailed:
		return "red"
	default:
		return "gray"
	}
}

// WriteDOT renders the plan as a GraphViz digraph. A synthetic "start"
// node points at every step with no predecessors and every step that is
// nobody's predecessor points at a synthetic "end" node. Steps are
// emitted in sorted-name order so output is stable.
func (p *Plan) WriteDOT(w io.Writer) error {
	var b strings.Builder

	b.WriteString("digraph {\n")
	b.WriteString("  \"start\" [ shape=circle fillcolor=gray ]\n")
	b.WriteString("  \"end\" [ shape=octagon fillcolor=gray ]\n")

	steps := p.Steps()

	isPredecessor := make(map[string]struct{})
	for _, s := range steps {
		fmt.Fprintf(&b, "  %q [ shape=%s fillcolor=%s ]\n",
			s.Name(), shapeFor(s.Kind()), colorFor(s.State()))
		for _, pred := range s.Predecessors() {
			isPredecessor[pred] = struct{}{}
		}
	}

	for _, s := range steps {
		for _, pred := range s.Predecessors() {
			fmt.Fprintf(&b, "  %q -> %q\n", pred, s.Name())
		}
	}

	for _, s := range steps {
		if len(s.Predecessors()) == 0 {
			fmt.Fprintf(&b, "  \"start\" -> %q\n", s.Name())
		}
		if _, ok := isPredecessor[s.Name()]; !ok {
			fmt.Fprintf(&b, "  %q -> \"end\"\n", s.Name())
		}
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
