package graph

import "errors"

// Sentinel errors for the graph package.
//
// Policy (mirrors core/types.go and builder/errors.go in the teacher
// library): only sentinel values are exported; callers branch with
// errors.Is. Sentinels are never stringified with caller-specific context
// at the definition site — wrap with fmt.Errorf("%w", ...) at the call
// site instead.
var (
	// ErrDuplicateID indicates add_vertex was called with an id that
	// already exists in the graph.
	ErrDuplicateID = errors.New("graph: id already exists")

	// ErrUnknownVertex indicates an operation referenced a vertex id that
	// is not present in the graph.
	ErrUnknownVertex = errors.New("graph: unknown vertex")

	// ErrUnknownEdge indicates an operation referenced an edge id that is
	// not present in the graph.
	ErrUnknownEdge = errors.New("graph: unknown edge")

	// ErrBadLength indicates a non-positive edge length was supplied to
	// connect.
	ErrBadLength = errors.New("graph: edge length must be > 0")

	// ErrBadOffset indicates split was called with an offset outside the
	// open interval (0, length) of the target edge.
	ErrBadOffset = errors.New("graph: split offset out of range")

	// ErrSameVertex indicates connect was called with a == b.
	ErrSameVertex = errors.New("graph: endpoints must be distinct")

	// ErrSameEdgeJoin indicates join's via-a and via-b resolve to the same
	// edge, a degenerate case I4 forbids.
	ErrSameEdgeJoin = errors.New("graph: join sides resolve to the same edge")

	// ErrAlreadyConnected indicates connect would violate I4: the two
	// vertices already share an edge.
	ErrAlreadyConnected = errors.New("graph: vertices already share an edge")

	// ErrNotConnected indicates split or join was given vertices that are
	// not the direct endpoints of a shared edge.
	ErrNotConnected = errors.New("graph: vertices are not directly connected")

	// ErrMergeOnSameEdge indicates a merge would leave some edge with the
	// survivor at both ends (I5 violation), detected before any mutation.
	ErrMergeOnSameEdge = errors.New("graph: merge would create a self-loop edge")

	// ErrDoubleConnectionAfterMerge indicates a merge would leave two
	// distinct edges sharing both endpoints (I4 violation), detected
	// before any mutation.
	ErrDoubleConnectionAfterMerge = errors.New("graph: merge would double-connect two edges")

	// ErrSplitOntoOccupiedVertex indicates the vertex passed to split as
	// "via" already has incident edges.
	ErrSplitOntoOccupiedVertex = errors.New("graph: split target vertex is not isolated")

	// ErrNoPath indicates search exhausted its frontier without reaching
	// the target.
	ErrNoPath = errors.New("graph: no path between endpoints")

	// ErrInvalidEndpoint indicates a search endpoint named an unknown edge
	// or an out-of-range position on a known edge.
	ErrInvalidEndpoint = errors.New("graph: invalid search endpoint")

	// ErrSearchBudgetExceeded indicates search popped more frontier
	// entries than its budget allows (defends against adversarial graphs).
	ErrSearchBudgetExceeded = errors.New("graph: search budget exceeded")

	// ErrInternalInvariant indicates an assertion failure: the graph
	// detected its own state violating an invariant it is supposed to
	// maintain. This should never occur on valid inputs; per policy it is
	// fatal to the owning session (see the session package).
	ErrInternalInvariant = errors.New("graph: internal invariant violated")
)
