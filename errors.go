package bestfirst

import "errors"

// Sentinel errors. The first three describe precondition violations and are
// raised as panics wrapping the sentinel, so a recovered value can be matched
// with errors.Is.
var (
	// ErrEmptyQueue is raised by Next on an empty expansion queue.
	ErrEmptyQueue = errors.New("bestfirst: next on empty expansion queue")

	// ErrNotExpanded is raised when the parent or total value of a state that
	// was never expanded is requested.
	ErrNotExpanded = errors.New("bestfirst: state not expanded")

	// ErrIDCollision is raised when two states that are not equal report the
	// same id to an expansion table.
	ErrIDCollision = errors.New("bestfirst: distinct states share an id")

	// ErrBudgetExhausted is returned by Run when the iteration or wall-clock
	// budget ran out before the planner reached a terminal code.
	ErrBudgetExhausted = errors.New("bestfirst: search budget exhausted")
)
