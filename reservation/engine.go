package reservation

import "github.com/snakegraph/snakegraph/graph"

// Engine is the per-edge interval reservation layer for one graph.Graph.
// It never mutates the graph; it only resolves identifiers on each call.
type Engine struct {
	g *graph.Graph

	snakeSeq uint64

	snakes          map[SnakeID]*snake
	edgeIntervals   map[graph.EdgeID][]interval
	vertexOccupants map[graph.VertexID]map[SnakeID]struct{}
}

// NewEngine creates an Engine bound to g.
func NewEngine(g *graph.Graph) *Engine {
	return &Engine{
		g:               g,
		snakes:          make(map[SnakeID]*snake),
		edgeIntervals:   make(map[graph.EdgeID][]interval),
		vertexOccupants: make(map[graph.VertexID]map[SnakeID]struct{}),
	}
}

// AddSnake creates a zero-length snake sitting on atVertex.
func (e *Engine) AddSnake(atVertex graph.VertexID) (SnakeID, error) {
	if !e.g.HasVertex(atVertex) {
		return "", graph.ErrUnknownVertex
	}

	id := e.nextSnakeID()
	e.snakes[id] = &snake{id: id, vertices: []graph.VertexID{atVertex}}
	e.addOccupant(atVertex, id)

	return id, nil
}

// RemoveSnake releases all of s's intervals and vertex occupancies and
// deletes its bookkeeping.
func (e *Engine) RemoveSnake(s SnakeID) error {
	snk, ok := e.snakes[s]
	if !ok {
		return ErrUnknownSnake
	}

	for _, edgeID := range snk.edges {
		list := e.edgeIntervals[edgeID]
		out := list[:0]
		for _, iv := range list {
			if iv.snake != s {
				out = append(out, iv)
			}
		}
		if len(out) == 0 {
			delete(e.edgeIntervals, edgeID)
		} else {
			e.edgeIntervals[edgeID] = out
		}
	}
	for _, v := range snk.vertices {
		e.removeOccupant(v, s)
	}
	delete(e.snakes, s)

	return nil
}

// SnakeState returns a read-only snapshot of s's current geometry.
func (e *Engine) SnakeState(s SnakeID) (SnakeState, error) {
	snk, ok := e.snakes[s]
	if !ok {
		return SnakeState{}, ErrUnknownSnake
	}
	vertices := make([]graph.VertexID, len(snk.vertices))
	copy(vertices, snk.vertices)

	return SnakeState{
		Length:     snk.length,
		Vertices:   vertices,
		HeadOffset: snk.headOffset,
		TailOffset: snk.tailOffset,
	}, nil
}

// Query returns the ids of every snake currently sharing any vertex with
// s (used by the session façade for contention detection).
func (e *Engine) Query(s SnakeID) ([]SnakeID, error) {
	snk, ok := e.snakes[s]
	if !ok {
		return nil, ErrUnknownSnake
	}

	seen := make(map[SnakeID]struct{})
	var out []SnakeID
	for _, v := range snk.vertices {
		for other := range e.vertexOccupants[v] {
			if other == s {
				continue
			}
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}

	return out, nil
}

// Stats is a read-only snapshot of engine size, mirroring graph.Graph's
// own Stats() facade method.
type Stats struct {
	Snakes          int
	ReservedMeasure int
}

// Stats returns a point-in-time snapshot of the number of live snakes and
// the total reserved interval measure across every edge.
func (e *Engine) Stats() Stats {
	s := Stats{Snakes: len(e.snakes)}
	for _, list := range e.edgeIntervals {
		for _, iv := range list {
			s.ReservedMeasure += iv.high - iv.low
		}
	}

	return s
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}

// Grow extends snake s by `by` integer units at end, consulting oracle
// whenever the growing end reaches a vertex with at least one
// through-routable continuation. Returns the amount actually grown, which
// may be less than by if growth halts early.
func (e *Engine) Grow(s SnakeID, end End, by int, oracle Oracle) (int, error) {
	if by < 0 {
		return 0, ErrBadAmount
	}
	snk, ok := e.snakes[s]
	if !ok {
		return 0, ErrUnknownSnake
	}

	grown := 0
	for grown < by {
		var step int
		var halted bool
		var err error
		if end == Head {
			step, halted, err = e.growHeadStep(snk, by-grown, oracle)
		} else {
			step, halted, err = e.growTailStep(snk, by-grown, oracle)
		}
		if err != nil {
			return grown, err
		}
		grown += step
		snk.length += step
		if halted || step == 0 {
			break
		}
	}

	return grown, nil
}

func (e *Engine) growHeadStep(s *snake, remaining int, oracle Oracle) (int, bool, error) {
	if remaining <= 0 {
		return 0, true, nil
	}
	if !s.isPoint() && s.headOffset == 0 && e.vertexOccupiedByOther(s.headVertex(), s.id) {
		// A prior hop landed the head on a vertex another snake already
		// occupied (occupancy is shared, not refused at landing time).
		// Progress off that vertex is blocked until occupancy drops back
		// to one. A point snake (one that has never grown onto an edge;
		// Shrink never reduces a grown snake back to a single vertex) is
		// exempt: two snakes starting at the same vertex have not
		// "arrived" via a contested hop and may still move independently.
		return 0, true, nil
	}
	if s.isPoint() || s.headOffset == 0 {
		return e.hopHead(s, remaining, oracle)
	}

	return e.consumeHeadSlack(s, remaining)
}

func (e *Engine) growTailStep(s *snake, remaining int, oracle Oracle) (int, bool, error) {
	if remaining <= 0 {
		return 0, true, nil
	}
	if !s.isPoint() && s.tailOffset == 0 && e.vertexOccupiedByOther(s.tailVertex(), s.id) {
		return 0, true, nil
	}
	if s.isPoint() || s.tailOffset == 0 {
		return e.hopTail(s, remaining, oracle)
	}

	return e.consumeTailSlack(s, remaining)
}

// candidatesFor returns the through-routable neighbours of v for an end
// currently arriving with no edge constraint (a point snake, all
// neighbours are candidates) or constrained by viaEdge (the edge this end
// is currently on).
func (e *Engine) candidatesFor(v graph.VertexID, isPoint bool, viaEdge graph.EdgeID) ([]graph.VertexID, error) {
	if isPoint {
		return e.g.DirsFrom(v)
	}

	return e.g.PairPartners(v, viaEdge)
}

func (e *Engine) hopHead(s *snake, remaining int, oracle Oracle) (int, bool, error) {
	v := s.headVertex()
	var viaEdge graph.EdgeID
	if !s.isPoint() {
		viaEdge = s.edges[0]
	}
	candidates, err := e.candidatesFor(v, s.isPoint(), viaEdge)
	if err != nil {
		return 0, true, err
	}
	if len(candidates) == 0 {
		return 0, true, nil
	}
	chosen, ok := oracle(v, candidates)
	if !ok {
		return 0, true, nil
	}

	seg, err := e.g.FindBetween(v, chosen)
	if err != nil {
		return 0, true, nil
	}
	details, err := e.g.EdgeDetails(seg.Edge)
	if err != nil {
		return 0, true, newDanglingEdgeError(s.id, seg.Edge)
	}

	free := e.freeSpaceFromVertex(seg.Edge, details, v, 0, s.id)
	consume := min3(remaining, free, details.Length)
	if consume <= 0 {
		return 0, true, nil
	}

	s.vertices = append([]graph.VertexID{chosen}, s.vertices...)
	s.edges = append([]graph.EdgeID{seg.Edge}, s.edges...)
	s.headOffset = details.Length - consume

	low, high := edgeSpan(details, v, 0, consume)
	if err := e.reserveSpan(seg.Edge, low, high, s.id); err != nil {
		return 0, true, err
	}
	if consume == details.Length {
		// The head has landed exactly on chosen, sharing whatever
		// occupancy is already there; growHeadStep blocks the next hop
		// off it while that occupancy persists.
		e.addOccupant(chosen, s.id)
	}

	return consume, false, nil
}

func (e *Engine) hopTail(s *snake, remaining int, oracle Oracle) (int, bool, error) {
	v := s.tailVertex()
	var viaEdge graph.EdgeID
	if !s.isPoint() {
		viaEdge = s.edges[len(s.edges)-1]
	}
	candidates, err := e.candidatesFor(v, s.isPoint(), viaEdge)
	if err != nil {
		return 0, true, err
	}
	if len(candidates) == 0 {
		return 0, true, nil
	}
	chosen, ok := oracle(v, candidates)
	if !ok {
		return 0, true, nil
	}

	seg, err := e.g.FindBetween(v, chosen)
	if err != nil {
		return 0, true, nil
	}
	details, err := e.g.EdgeDetails(seg.Edge)
	if err != nil {
		return 0, true, newDanglingEdgeError(s.id, seg.Edge)
	}

	free := e.freeSpaceFromVertex(seg.Edge, details, v, 0, s.id)
	consume := min3(remaining, free, details.Length)
	if consume <= 0 {
		return 0, true, nil
	}

	s.vertices = append(s.vertices, chosen)
	s.edges = append(s.edges, seg.Edge)
	s.tailOffset = details.Length - consume

	low, high := edgeSpan(details, v, 0, consume)
	if err := e.reserveSpan(seg.Edge, low, high, s.id); err != nil {
		return 0, true, err
	}
	if consume == details.Length {
		e.addOccupant(chosen, s.id)
	}

	return consume, false, nil
}

func (e *Engine) consumeHeadSlack(s *snake, remaining int) (int, bool, error) {
	edgeID := s.edges[0]
	details, err := e.g.EdgeDetails(edgeID)
	if err != nil {
		return 0, true, newDanglingEdgeError(s.id, edgeID)
	}
	v0 := s.vertices[0]

	free := e.freeSpaceTowardVertex(edgeID, details, v0, s.headOffset, s.id)
	consume := min3(remaining, free, s.headOffset)
	if consume <= 0 {
		return 0, true, nil
	}

	lowLocal, highLocal := s.headOffset-consume, s.headOffset
	cl, ch := edgeSpan(details, v0, lowLocal, highLocal)
	if err := e.reserveSpan(edgeID, cl, ch, s.id); err != nil {
		return 0, true, err
	}
	s.headOffset -= consume
	if s.headOffset == 0 {
		e.addOccupant(v0, s.id)
	}

	return consume, false, nil
}

func (e *Engine) consumeTailSlack(s *snake, remaining int) (int, bool, error) {
	edgeID := s.edges[len(s.edges)-1]
	details, err := e.g.EdgeDetails(edgeID)
	if err != nil {
		return 0, true, newDanglingEdgeError(s.id, edgeID)
	}
	vk := s.vertices[len(s.vertices)-1]

	free := e.freeSpaceTowardVertex(edgeID, details, vk, s.tailOffset, s.id)
	consume := min3(remaining, free, s.tailOffset)
	if consume <= 0 {
		return 0, true, nil
	}

	lowLocal, highLocal := s.tailOffset-consume, s.tailOffset
	cl, ch := edgeSpan(details, vk, lowLocal, highLocal)
	if err := e.reserveSpan(edgeID, cl, ch, s.id); err != nil {
		return 0, true, err
	}
	s.tailOffset -= consume
	if s.tailOffset == 0 {
		e.addOccupant(vk, s.id)
	}

	return consume, false, nil
}

// freeSpaceFromVertex returns how far, starting at distance localFrom away
// from nearVertex and moving further away, is unreserved by any snake
// other than exclude.
func (e *Engine) freeSpaceFromVertex(edgeID graph.EdgeID, details graph.EdgeDetails, nearVertex graph.VertexID, localFrom int, exclude SnakeID) int {
	if nearVertex == details.LowVertex {
		return e.freeForwardExcluding(edgeID, localFrom, details.Length, exclude)
	}

	return e.freeBackwardExcluding(edgeID, details.Length-localFrom, exclude)
}

// freeSpaceTowardVertex returns how far, starting at distance
// localFromNear away from nearVertex and moving back toward it, is
// unreserved by any snake other than exclude.
func (e *Engine) freeSpaceTowardVertex(edgeID graph.EdgeID, details graph.EdgeDetails, nearVertex graph.VertexID, localFromNear int, exclude SnakeID) int {
	if nearVertex == details.LowVertex {
		return e.freeBackwardExcluding(edgeID, localFromNear, exclude)
	}

	return e.freeForwardExcluding(edgeID, details.Length-localFromNear, details.Length, exclude)
}

// Shrink contracts snake s at end by up to `by` integer units. If by >=
// s.length, s collapses to its opposite end as a zero-length point; it is
// never deleted implicitly.
func (e *Engine) Shrink(s SnakeID, end End, by int) (int, error) {
	if by < 0 {
		return 0, ErrBadAmount
	}
	snk, ok := e.snakes[s]
	if !ok {
		return 0, ErrUnknownSnake
	}

	shrunk := 0
	for shrunk < by && snk.length > 0 {
		var step int
		var err error
		if end == Head {
			step, err = e.shrinkHeadStep(snk, by-shrunk)
		} else {
			step, err = e.shrinkTailStep(snk, by-shrunk)
		}
		if err != nil {
			return shrunk, err
		}
		shrunk += step
		snk.length -= step
		if step == 0 {
			break
		}
	}

	return shrunk, nil
}

func (e *Engine) shrinkHeadStep(s *snake, remaining int) (int, error) {
	if s.isPoint() {
		return 0, nil
	}
	edgeID := s.edges[0]
	details, err := e.g.EdgeDetails(edgeID)
	if err != nil {
		return 0, newDanglingEdgeError(s.id, edgeID)
	}
	v0 := s.vertices[0]

	consume := min3(remaining, details.Length-s.headOffset, s.length)
	if consume <= 0 {
		return 0, nil
	}
	if s.headOffset == 0 && !touchesElsewhere(s.vertices, v0, 2, 0) {
		e.removeOccupant(v0, s.id)
	}

	lowLocal, highLocal := s.headOffset, s.headOffset+consume
	cl, ch := edgeSpan(details, v0, lowLocal, highLocal)
	e.releaseSpan(edgeID, cl, ch, s.id)
	s.headOffset += consume

	if s.headOffset == details.Length && len(s.edges) > 1 {
		s.vertices = s.vertices[1:]
		s.edges = s.edges[1:]
		s.headOffset = 0
		e.addOccupant(s.vertices[0], s.id)
	}

	return consume, nil
}

func (e *Engine) shrinkTailStep(s *snake, remaining int) (int, error) {
	if s.isPoint() {
		return 0, nil
	}
	edgeID := s.edges[len(s.edges)-1]
	details, err := e.g.EdgeDetails(edgeID)
	if err != nil {
		return 0, newDanglingEdgeError(s.id, edgeID)
	}
	vk := s.vertices[len(s.vertices)-1]

	consume := min3(remaining, details.Length-s.tailOffset, s.length)
	if consume <= 0 {
		return 0, nil
	}
	if s.tailOffset == 0 && !touchesElsewhere(s.vertices, vk, 0, 2) {
		e.removeOccupant(vk, s.id)
	}

	lowLocal, highLocal := s.tailOffset, s.tailOffset+consume
	cl, ch := edgeSpan(details, vk, lowLocal, highLocal)
	e.releaseSpan(edgeID, cl, ch, s.id)
	s.tailOffset += consume

	if s.tailOffset == details.Length && len(s.edges) > 1 {
		s.vertices = s.vertices[:len(s.vertices)-1]
		s.edges = s.edges[:len(s.edges)-1]
		s.tailOffset = 0
		e.addOccupant(s.vertices[len(s.vertices)-1], s.id)
	}

	return consume, nil
}

// Move grows s by `by` at end then shrinks the opposite end by the same
// actually-achieved amount, preserving length exactly. Returns the net
// displacement achieved.
func (e *Engine) Move(s SnakeID, end End, by int, oracle Oracle) (int, error) {
	grown, err := e.Grow(s, end, by, oracle)
	if err != nil {
		return 0, err
	}
	if grown == 0 {
		return 0, nil
	}
	if _, err := e.Shrink(s, -end, grown); err != nil {
		return 0, err
	}

	return grown, nil
}
