package graph

import "errors"

// File: search.go
// Role: path search between two points, each either an existing vertex or
// a mid-edge position.
//
// A mid-edge endpoint is materialized into a real vertex via Split before
// the search runs, and — because search is a pure query, not a structural
// mutation — any vertex synthesized solely for the query is reversed back
// out afterward, restoring the graph to its pre-call state. The "no
// reservations touching the synthesized vertex" requirement is treated
// here purely as a graph-layer structural assertion: this package never
// queries the reservation engine, so it is the caller's (the session
// façade's) responsibility to avoid calling Search while a snake occupies
// the position being queried.

const defaultSearchBudget = 10_000

// Endpoint names a search boundary: either an existing vertex, or a
// position along an edge that will be materialized into one for the
// duration of the search.
type Endpoint struct {
	vertex      VertexID
	edge        EdgeID
	position    int
	hasPosition bool
}

// AtVertex builds an Endpoint naming an existing vertex directly.
func AtVertex(v VertexID) Endpoint { return Endpoint{vertex: v} }

// OnEdge builds an Endpoint naming a position along edge e, measured from
// e's Low end. Negative positions count back from High, matching Split's
// `at` convention.
func OnEdge(e EdgeID, position int) Endpoint {
	return Endpoint{edge: e, position: position, hasPosition: true}
}

// PathStep is one edge traversal in a search result: the edge id, the
// direction of travel along it, and its length. Direction is the sign
// (DirLow/DirHigh) of the vertex being departed from, i.e. DirLow means
// the step travels from Low to High.
type PathStep struct {
	Edge      EdgeID
	Direction Direction
	Length    int
}

// SearchResult is the outcome of a successful Search.
type SearchResult struct {
	Steps    []PathStep
	Distance int
}

// Search finds a route from start to end that a snake could actually
// traverse — at every intermediate vertex, the exit edge must be
// authorized by an explicit pair with the entry edge. From the two
// endpoint vertices themselves, any incident edge may be taken, matching
// the "snake is still a single point" oracle rule used by the reservation
// engine. budget caps the number of frontier vertices explored; pass 0 to
// use the default of 10000.
func (g *Graph) Search(start, end Endpoint, budget int) (result SearchResult, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if budget <= 0 {
		budget = defaultSearchBudget
	}

	startV, endV, undo, err := g.materializeEndpoints(start, end)
	if err != nil {
		return SearchResult{}, err
	}
	defer func() {
		if undo == nil {
			return
		}
		if undoErr := undo(); undoErr != nil {
			err = errors.Join(err, undoErr)
		}
	}()

	result, err = g.bfs(startV, endV, budget)

	return result, err
}

// materializeEndpoints resolves both Search endpoints to vertex ids and
// returns a single closure that undoes whatever synthesis either one
// required, innermost first.
//
// When both endpoints are OnEdge positions on the same edge, they cannot
// be materialized independently: the first Split shrinks that edge in
// place (construct.go's splitInner), so a second, naively sequential
// resolution would read the second endpoint's original coordinate against
// the edge's new, smaller length. Instead both positions are resolved
// against the edge's original Low/High/Length up front, ordered from Low
// to High, and at most two splits are performed — the second against the
// fresh via-high edge the first produced.
func (g *Graph) materializeEndpoints(start, end Endpoint) (VertexID, VertexID, func() error, error) {
	if start.hasPosition && end.hasPosition && start.edge == end.edge {
		return g.materializeSameEdge(start.edge, start.position, end.position)
	}

	startV, undoStart, err := g.materialize(start)
	if err != nil {
		return "", "", nil, err
	}
	endV, undoEnd, err := g.materialize(end)
	if err != nil {
		var undoErr error
		if undoStart != nil {
			undoErr = undoStart()
		}

		return "", "", nil, errors.Join(err, undoErr)
	}

	undo := func() error {
		var errs []error
		if undoEnd != nil {
			if e := undoEnd(); e != nil {
				errs = append(errs, e)
			}
		}
		if undoStart != nil {
			if e := undoStart(); e != nil {
				errs = append(errs, e)
			}
		}

		return errors.Join(errs...)
	}

	return startV, endV, undo, nil
}

// materialize resolves an Endpoint to a concrete vertex id. If the
// endpoint already names an exact existing vertex position no mutation
// occurs and undo is nil. Otherwise it performs a Split and returns an
// undo closure that reverses it.
func (g *Graph) materialize(ep Endpoint) (VertexID, func() error, error) {
	if !ep.hasPosition {
		if _, err := g.vertex(ep.vertex); err != nil {
			return "", nil, ErrInvalidEndpoint
		}

		return ep.vertex, nil, nil
	}

	e, err := g.edge(ep.edge)
	if err != nil {
		return "", nil, ErrInvalidEndpoint
	}

	normalized, ok := normalizeOnEdgePosition(ep.position, e.Length)
	if !ok {
		return "", nil, ErrInvalidEndpoint
	}
	if normalized == 0 {
		return e.Low, nil, nil
	}
	if normalized == e.Length {
		return e.High, nil, nil
	}

	low, high := e.Low, e.High
	viaID, err := g.splitInner(low, NewVertexSentinel, high, normalized)
	if err != nil {
		return "", nil, err
	}

	undo := func() error { return g.reverseSplit(low, viaID, high) }

	return viaID, undo, nil
}

// materializeSameEdge handles two OnEdge endpoints sharing an edge id, per
// materializeEndpoints' doc comment.
func (g *Graph) materializeSameEdge(edgeID EdgeID, startPos, endPos int) (VertexID, VertexID, func() error, error) {
	e, err := g.edge(edgeID)
	if err != nil {
		return "", "", nil, ErrInvalidEndpoint
	}
	low, high, length := e.Low, e.High, e.Length

	startOff, ok := normalizeOnEdgePosition(startPos, length)
	if !ok {
		return "", "", nil, ErrInvalidEndpoint
	}
	endOff, ok := normalizeOnEdgePosition(endPos, length)
	if !ok {
		return "", "", nil, ErrInvalidEndpoint
	}

	nearOff, farOff := startOff, endOff
	startIsNear := true
	if farOff < nearOff {
		nearOff, farOff = farOff, nearOff
		startIsNear = false
	}

	resolveExact := func(off int) (VertexID, bool) {
		switch off {
		case 0:
			return low, true
		case length:
			return high, true
		default:
			return "", false
		}
	}

	nearV, nearExact := resolveExact(nearOff)
	var undoNear func() error
	if !nearExact {
		via, err := g.splitInner(low, NewVertexSentinel, high, nearOff)
		if err != nil {
			return "", "", nil, err
		}
		nearV = via
		undoNear = func() error { return g.reverseSplit(low, via, high) }
	}

	var farV VertexID
	var undoFar func() error
	switch {
	case farOff == nearOff:
		farV = nearV
	default:
		if v, exact := resolveExact(farOff); exact {
			farV = v
			break
		}
		via, err := g.splitInner(nearV, NewVertexSentinel, high, farOff-nearOff)
		if err != nil {
			if undoNear != nil {
				_ = undoNear()
			}

			return "", "", nil, err
		}
		farV = via
		undoFar = func() error { return g.reverseSplit(nearV, via, high) }
	}

	startV, endV := nearV, farV
	if !startIsNear {
		startV, endV = farV, nearV
	}

	undo := func() error {
		var errs []error
		if undoFar != nil {
			if e := undoFar(); e != nil {
				errs = append(errs, e)
			}
		}
		if undoNear != nil {
			if e := undoNear(); e != nil {
				errs = append(errs, e)
			}
		}

		return errors.Join(errs...)
	}

	return startV, endV, undo, nil
}

// normalizeOnEdgePosition resolves a possibly-negative OnEdge position
// (counted back from High when negative, matching Split's `at`
// convention) to a non-negative offset from Low, reporting whether it
// falls within [0, length].
func normalizeOnEdgePosition(pos, length int) (int, bool) {
	normalized := pos
	if normalized < 0 {
		normalized = length + normalized
	}
	if normalized < 0 || normalized > length {
		return 0, false
	}

	return normalized, true
}

// bfs explores vertex states, tracking the edge each state was reached by
// so continuation at interior vertices can be checked against that
// vertex's authorized pairs.
func (g *Graph) bfs(start, end VertexID, budget int) (SearchResult, error) {
	if start == end {
		return SearchResult{}, nil
	}

	type state struct {
		vertex VertexID
		via    EdgeID // "" if this state has no entry-edge constraint
	}
	type cameFrom struct {
		prev state
		step PathStep
	}

	visited := make(map[state]cameFrom)
	frontier := []state{{vertex: start}}
	visited[state{vertex: start}] = cameFrom{}

	popped := 0
	var goalState state
	found := false

outer:
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		popped++
		if popped > budget {
			return SearchResult{}, ErrSearchBudgetExceeded
		}

		v := g.vertices[cur.vertex]

		type candidate struct {
			edge EdgeID
			dest VertexID
		}
		var candidates []candidate

		if cur.via == "" {
			for _, eid := range v.holderOrder {
				e := g.edges[eid]
				candidates = append(candidates, candidate{edge: eid, dest: e.other(cur.vertex)})
			}
		} else {
			for _, p := range v.Pairs {
				var otherSide PairSide
				matched := false
				if p.A.Edge == cur.via {
					otherSide, matched = p.B, true
				} else if p.B.Edge == cur.via {
					otherSide, matched = p.A, true
				}
				if !matched {
					continue
				}
				e := g.edges[otherSide.Edge]
				candidates = append(candidates, candidate{edge: otherSide.Edge, dest: e.other(cur.vertex)})
			}
		}

		for _, c := range candidates {
			next := state{vertex: c.dest, via: c.edge}
			if _, seen := visited[next]; seen {
				continue
			}
			e := g.edges[c.edge]
			visited[next] = cameFrom{
				prev: cur,
				step: PathStep{Edge: c.edge, Direction: e.signAt(cur.vertex), Length: e.Length},
			}
			if c.dest == end {
				goalState = next
				found = true

				break outer
			}
			frontier = append(frontier, next)
		}
	}

	if !found {
		return SearchResult{}, ErrNoPath
	}

	var steps []PathStep
	dist := 0
	startState := state{vertex: start}
	for s := goalState; s != startState; {
		cf := visited[s]
		steps = append([]PathStep{cf.step}, steps...)
		dist += cf.step.Length
		s = cf.prev
	}

	return SearchResult{Steps: steps, Distance: dist}, nil
}

// reverseSplit undoes a Split performed solely to materialize a search
// endpoint: it fuses the low-via and via-high edges back into the
// original low-high edge and removes via. This is expected to always
// succeed for a vertex nothing but Search has touched since it was
// created; any deviation from the exact shape Split produced is raised as
// ErrInternalInvariant rather than silently skipped, since a caller that
// relies on the graph returning to its pre-Search state needs to know
// when that did not happen.
func (g *Graph) reverseSplit(low, via, high VertexID) error {
	viaVertex, ok := g.vertices[via]
	if !ok {
		return newSplitCleanupError(via, "synthesized vertex no longer exists")
	}

	holders := viaVertex.holderOrder
	if len(holders) != 2 {
		return newSplitCleanupError(via, "synthesized vertex does not have exactly two holders")
	}
	if len(viaVertex.Pairs) != 1 {
		return newSplitCleanupError(via, "synthesized vertex carries more than its one straight-through pair")
	}

	eLowVia := g.edges[holders[0]]
	eViaHigh := g.edges[holders[1]]
	if eLowVia.other(via) != low {
		eLowVia, eViaHigh = eViaHigh, eLowVia
	}
	if eLowVia.other(via) != low || eViaHigh.other(via) != high {
		return newSplitCleanupError(via, "synthesized vertex's two edges do not lead to the expected endpoints")
	}

	restoredLength := eLowVia.Length + eViaHigh.Length
	eLowVia.High = high
	eLowVia.Length = restoredLength

	highV := g.vertices[high]
	highV.removeHolder(eViaHigh.ID)
	highV.addHolder(eLowVia.ID)
	for i, p := range highV.Pairs {
		highV.Pairs[i] = rewriteSide(p, eViaHigh.ID, eLowVia.ID)
	}

	delete(g.edges, eViaHigh.ID)
	delete(g.vertices, via)
	g.recomputeSiblings()

	return nil
}
