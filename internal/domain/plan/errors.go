package plan

import "errors"

// Errors raised while building or running a plan.
var (
	// ErrActionUnnamed is a configuration error: a step descriptor with no name.
	ErrActionUnnamed = errors.New("action has no name")
	// ErrActionUnknown is a configuration error: no key matches any step kind.
	ErrActionUnknown = errors.New("action matches no known kind")
	// ErrActionAmbiguous is a configuration error: keys span more than one kind.
	ErrActionAmbiguous = errors.New("action mixes keys of more than one kind")
	// ErrDuplicateStep is a configuration error: two steps share a name.
	ErrDuplicateStep = errors.New("step with this name already exists")

	// ErrCyclicDependency is a structural error: a step is its own
	// transitive predecessor.
	ErrCyclicDependency = errors.New("cyclic dependency detected")
	// ErrMissingPredecessor is a structural error: an edge points at a step
	// that is not part of the plan.
	ErrMissingPredecessor = errors.New("step depends on nonexistent step")
	// ErrInconsistentPlan wraps any structural error found before a run.
	ErrInconsistentPlan = errors.New("plan is inconsistent")

	// ErrDoubleRun signals a caller bug: Run was called on a step that is
	// no longer pending. This is fatal, not a step failure.
	ErrDoubleRun = errors.New("step executed twice")

	// ErrUnknownVariable is returned when assigning to a variable the plan
	// never declared. Assignment never creates variables.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrExpansionDepth is returned when ${...} substitution keeps
	// producing new placeholders past the depth bound.
	ErrExpansionDepth = errors.New("variable expansion depth exceeded")
)
