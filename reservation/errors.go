package reservation

import "errors"

// Sentinel errors for the reservation package, following the same
// errors.Is branching policy as the graph package.
var (
	// ErrUnknownSnake indicates an operation referenced a snake id that is
	// not present in the engine.
	ErrUnknownSnake = errors.New("reservation: unknown snake")

	// ErrBadAmount indicates a negative amount was passed to grow, shrink,
	// or move.
	ErrBadAmount = errors.New("reservation: amount must be >= 0")

	// ErrIntervalConflict indicates a reservation could not be placed
	// because it would overlap another snake's interval on the same edge.
	// Grow and Shrink compute free space immediately before calling
	// reserveSpan, so in practice they never trigger it — it exists as
	// reserveSpan's own defense against placing an overlapping interval,
	// kept distinct from ErrInternalInvariant because an interval conflict
	// by itself says nothing about the graph or engine bookkeeping being
	// corrupted.
	ErrIntervalConflict = errors.New("reservation: interval conflict")

	// ErrInternalInvariant indicates the engine detected its own
	// bookkeeping violating an invariant it is supposed to maintain. This
	// should never occur on valid inputs; per policy it is fatal to the
	// owning session.
	ErrInternalInvariant = errors.New("reservation: internal invariant violated")
)
