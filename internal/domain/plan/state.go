package plan

// State represents the lifecycle state of a step.
//
// The string values are the wire form used in state documents, so they are
// stable across releases.
type State string

const (
	// StatePending indicates the step has not run yet.
	StatePending State = "PENDING"
	// StateDone indicates the step ran and succeeded.
	StateDone State = "DONE"
	// StateFailed indicates the step ran and failed.
	StateFailed State = "FAILED"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true once the step has run, successfully or not.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// IsValid checks if the state is one of the known lifecycle states.
func (s State) IsValid() bool {
	switch s {
	case StatePending, StateDone, StateFailed:
		return true
	default:
		return false
	}
}
