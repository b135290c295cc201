package graph

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// invariantError wraps ErrInternalInvariant with a spew.Sdump of the
// offending state, giving a caller that logs the error enough to diagnose
// an assertion failure without attaching a debugger.
type invariantError struct {
	msg  string
	dump string
}

func (e *invariantError) Error() string {
	return fmt.Sprintf("%s\n%s", e.msg, e.dump)
}

func (e *invariantError) Unwrap() error { return ErrInternalInvariant }

// newDanglingPairEdgeError builds an InternalInvariant error for a pair
// side that names an edge id no longer present in the graph — every pair
// is constructed from live edges (construct.go) and rewritten whenever its
// edge id changes, so reaching this means that bookkeeping has drifted.
func newDanglingPairEdgeError(owner VertexID, p Pair) error {
	return &invariantError{
		msg: fmt.Sprintf("graph: pair at %s names a missing edge", owner),
		dump: spew.Sdump(struct {
			Owner VertexID
			Pair  Pair
		}{Owner: owner, Pair: p}),
	}
}

// newSplitCleanupError builds an InternalInvariant error for a failure to
// reverse a vertex synthesized solely to materialize a search endpoint —
// reaching here means something mutated a vertex Search expected to be
// untouched between materializing it and undoing it.
func newSplitCleanupError(owner VertexID, reason string) error {
	return &invariantError{
		msg: fmt.Sprintf("graph: cannot reverse synthesized vertex %s: %s", owner, reason),
		dump: spew.Sdump(struct {
			Vertex VertexID
			Reason string
		}{Vertex: owner, Reason: reason}),
	}
}
