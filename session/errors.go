package session

import "errors"

// Sentinel errors for the session package, following the same errors.Is
// branching policy as graph and reservation.
var (
	// ErrSessionCorrupted indicates a prior call observed an
	// InternalInvariant failure in the graph or reservation layer; the
	// session refuses every further call rather than operate on state it
	// can no longer trust.
	ErrSessionCorrupted = errors.New("session: corrupted after an internal invariant failure")

	// ErrUnknownSnake indicates an operation named a snake id the façade
	// never registered (or that has since been removed).
	ErrUnknownSnake = errors.New("session: unknown registered snake")

	// ErrInvalidPosition indicates AddSnakeAt was given a Position naming
	// an unknown vertex, an unknown edge, or an out-of-range offset.
	ErrInvalidPosition = errors.New("session: invalid position")
)
