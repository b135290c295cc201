package reservation

import "github.com/snakegraph/snakegraph/graph"

// End names which end of a snake an operation targets.
type End int8

const (
	// Head is the snake's leading end.
	Head End = 1
	// Tail is the snake's trailing end.
	Tail End = -1
)

// Oracle is the caller-supplied decision function invoked whenever a
// growing end at a vertex has at least one legal next edge (even a single
// candidate is offered to the oracle rather than taken). Candidates are
// presented in the deterministic order their edges became incident to
// vertex. The oracle returns ok=false (the "none" sentinel) to refuse,
// which halts growth for this call.
type Oracle func(vertex graph.VertexID, candidates []graph.VertexID) (chosen graph.VertexID, ok bool)

// interval is one reserved half-open span [low, high) on an edge, in that
// edge's own Low-based coordinate system, labelled with its owning snake.
type interval struct {
	low, high int
	snake     SnakeID
}

// snake is the engine's internal bookkeeping for one snake: its current
// vertex sequence v0 (nearest the head) .. vk (nearest the tail), the
// edges directly connecting consecutive vertices, and the two end
// offsets.
type snake struct {
	id SnakeID

	vertices []graph.VertexID
	edges    []graph.EdgeID // len(edges) == len(vertices)-1; edges[i] connects vertices[i], vertices[i+1]

	headOffset int
	tailOffset int
	length     int
}

// SnakeState is the read-only projection returned by SnakeState.
type SnakeState struct {
	Length     int
	Vertices   []graph.VertexID
	HeadOffset int
	TailOffset int
}

func (s *snake) isPoint() bool { return len(s.vertices) == 1 }

func (s *snake) headVertex() graph.VertexID { return s.vertices[0] }

func (s *snake) tailVertex() graph.VertexID { return s.vertices[len(s.vertices)-1] }
