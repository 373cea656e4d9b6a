package domain

import "errors"

var (
	// ErrInvalidConfiguration reports malformed builder inputs: a size
	// mismatch or an out-of-range floor index.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnboundTask reports a goal that names a task, person or floor the
	// problem does not declare.
	ErrUnboundTask = errors.New("unbound task")

	// ErrPlannerFailure reports that the external planner returned no usable
	// plan for a problem.
	ErrPlannerFailure = errors.New("planner failure")

	// ErrInvalidModel reports an ill-formed declaration (duplicate name,
	// unknown type, arity or type mismatch).
	ErrInvalidModel = errors.New("invalid model")

	// ErrNotApplicable is returned when an action's preconditions do not
	// hold in the given state.
	ErrNotApplicable = errors.New("not applicable")

	// ErrNotFound is returned when a stored problem does not exist.
	ErrNotFound = errors.New("not found")
)
