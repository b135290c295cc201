package reservation

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/snakegraph/snakegraph/graph"
)

// invariantError wraps ErrInternalInvariant with a spew.Sdump of the
// offending interval state, so a caller logging the error (or a test
// failure message) gets enough to diagnose the violation without
// attaching a debugger.
type invariantError struct {
	msg  string
	dump string
}

func (e *invariantError) Error() string {
	return fmt.Sprintf("%s\n%s", e.msg, e.dump)
}

func (e *invariantError) Unwrap() error { return ErrInternalInvariant }

// newDanglingEdgeError builds an InternalInvariant error for a snake whose
// own recorded path names a graph edge that no longer resolves. Edges are
// never deleted except by Search's own synthesize-then-reverse cleanup,
// which is documented to never touch an edge a snake occupies — reaching
// here means that contract was broken somewhere upstream.
func newDanglingEdgeError(s SnakeID, edgeID graph.EdgeID) error {
	return &invariantError{
		msg: fmt.Sprintf("reservation: snake %s references missing edge %s", s, edgeID),
		dump: spew.Sdump(struct {
			Snake SnakeID
			Edge  graph.EdgeID
		}{Snake: s, Edge: edgeID}),
	}
}

// newIntervalConflictError reports that a reservation could not be placed
// because it would overlap another snake's interval on the same edge. It
// wraps the ordinary ErrIntervalConflict rather than ErrInternalInvariant:
// an overlap here reflects a placement that cannot be made, not a
// corrupted graph or bookkeeping structure, and the two are kept distinct.
func newIntervalConflictError(edgeID graph.EdgeID, existing []interval, attempted interval) error {
	return fmt.Errorf("reservation: edge %s: attempted %+v conflicts with existing %+v: %w",
		edgeID, attempted, existing, ErrIntervalConflict)
}
