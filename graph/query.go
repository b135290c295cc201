package graph

import "sort"

// EdgeDetails is the read-only projection returned by EdgeDetails.
type EdgeDetails struct {
	Edge      EdgeID
	LowVertex VertexID
	HighVertex VertexID
	Length    int
	Siblings  []EdgeID
}

// EdgeDetails returns the low/high endpoints, length, and sibling set of e.
func (g *Graph) EdgeDetails(e EdgeID) (EdgeDetails, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge, err := g.edge(e)
	if err != nil {
		return EdgeDetails{}, err
	}

	return EdgeDetails{
		Edge:       edge.ID,
		LowVertex:  edge.Low,
		HighVertex: edge.High,
		Length:     edge.Length,
		Siblings:   edge.Siblings(),
	}, nil
}

// FindDirection selects which vertex find_vertex should return relative to
// a query position.
type FindDirection int8

const (
	// FindNearest returns the nearest vertex by absolute distance, ties
	// preferring the lower-position side.
	FindNearest FindDirection = 0
	// FindAfter returns the nearest vertex strictly greater than `at`.
	FindAfter FindDirection = 1
	// FindBefore returns the nearest vertex strictly less than `at`.
	FindBefore FindDirection = -1
)

type edgeVertexPos struct {
	vertex VertexID
	pos    int
}

func (e *Edge) positions() []edgeVertexPos {
	return []edgeVertexPos{{e.Low, 0}, {e.High, e.Length}}
}

// FindVertex locates a vertex on edge e relative to integer position at,
// per dir. Returns ok=false (NotFound) if no vertex satisfies dir's
// constraint.
func (g *Graph) FindVertex(e EdgeID, at int, dir FindDirection) (VertexID, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge, err := g.edge(e)
	if err != nil {
		return "", false, err
	}

	positions := edge.positions()
	sort.Slice(positions, func(i, j int) bool { return positions[i].pos < positions[j].pos })

	switch dir {
	case FindAfter:
		for _, p := range positions {
			if p.pos > at {
				return p.vertex, true, nil
			}
		}
		return "", false, nil
	case FindBefore:
		best, found := edgeVertexPos{}, false
		for _, p := range positions {
			if p.pos < at {
				best, found = p, true
			}
		}
		if !found {
			return "", false, nil
		}
		return best.vertex, true, nil
	default: // FindNearest
		best := positions[0]
		bestDist := abs(best.pos - at)
		for _, p := range positions[1:] {
			d := abs(p.pos - at)
			if d < bestDist || (d == bestDist && p.pos < best.pos) {
				best, bestDist = p, d
			}
		}
		return best.vertex, true, nil
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// ExactVertex returns the vertex sitting at exactly integer position at on
// edge e, if any.
func (g *Graph) ExactVertex(e EdgeID, at int) (VertexID, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge, err := g.edge(e)
	if err != nil {
		return "", false, err
	}
	switch at {
	case 0:
		return edge.Low, true, nil
	case edge.Length:
		return edge.High, true, nil
	default:
		return "", false, nil
	}
}

// VertexOnEdgeInfo reports a vertex's position on an edge and its
// immediate neighbours along that edge.
type VertexOnEdgeInfo struct {
	Position int
	Prev     VertexID
	HasPrev  bool
	Next     VertexID
	HasNext  bool
}

// VertexOnEdge returns the position of v on e plus its immediate
// prior/after neighbours on that edge. Fails with ErrUnknownVertex if v
// is not on e.
func (g *Graph) VertexOnEdge(e EdgeID, v VertexID) (VertexOnEdgeInfo, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge, err := g.edge(e)
	if err != nil {
		return VertexOnEdgeInfo{}, err
	}
	switch v {
	case edge.Low:
		return VertexOnEdgeInfo{Position: 0, Next: edge.High, HasNext: true}, nil
	case edge.High:
		return VertexOnEdgeInfo{Position: edge.Length, Prev: edge.Low, HasPrev: true}, nil
	default:
		return VertexOnEdgeInfo{}, ErrUnknownVertex
	}
}

// PairNeighbours is one entry of pairs_at's result: the two neighbour
// vertices one step away along a pair's two authorized directions.
type PairNeighbours struct {
	A, B VertexID
}

// PairsAt returns, for each explicit pair at v, the two neighbour vertex
// ids one step away along the paired directions, plus an implicit
// straight-through pair for every edge where v sits strictly interior to
// that single edge. Under this package's edge model every edge has
// exactly two endpoints, so no vertex is ever interior to a single Edge —
// the implicit contribution is always empty in practice, but the loop is
// kept generic (rather than special-cased away) so the function's
// contract matches the more general two-sided routing model this is a
// deliberate simplification of, even in this degenerate case.
func (g *Graph) PairsAt(v VertexID) ([]PairNeighbours, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertex, err := g.vertex(v)
	if err != nil {
		return nil, err
	}

	out := make([]PairNeighbours, 0, len(vertex.Pairs))
	for _, p := range vertex.Pairs {
		edgeA := g.edges[p.A.Edge]
		edgeB := g.edges[p.B.Edge]
		out = append(out, PairNeighbours{A: edgeA.other(v), B: edgeB.other(v)})
	}

	for _, eid := range vertex.holderOrder {
		e := g.edges[eid]
		// v is interior to e iff v is neither endpoint — impossible under
		// this package's fixed two-endpoint Edge, kept for documentation
		// parity with the general data model this simplifies.
		if v != e.Low && v != e.High {
			out = append(out, PairNeighbours{A: e.Low, B: e.High})
		}
	}

	return out, nil
}

// PairPartners returns, for vertex v, the neighbour vertices reachable by
// continuing through a pair whose other side references viaEdge — i.e.
// the through-routable continuations available to someone arriving at v
// along viaEdge, in the order their edges became incident to v. Returns
// ErrUnknownVertex or ErrUnknownEdge if either id is absent.
func (g *Graph) PairPartners(v VertexID, viaEdge EdgeID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertex, err := g.vertex(v)
	if err != nil {
		return nil, err
	}
	if _, err := g.edge(viaEdge); err != nil {
		return nil, err
	}

	var out []VertexID
	for _, eid := range vertex.holderOrder {
		for _, p := range vertex.Pairs {
			if (p.A.Edge == viaEdge && p.B.Edge == eid) || (p.B.Edge == viaEdge && p.A.Edge == eid) {
				out = append(out, g.edges[eid].other(v))

				break
			}
		}
	}

	return out, nil
}

// DirsFrom returns the union of adjacent vertices across all edges
// incident to v, independent of pairing, in deterministic
// edge-became-incident order.
func (g *Graph) DirsFrom(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertex, err := g.vertex(v)
	if err != nil {
		return nil, err
	}

	seen := make(map[VertexID]struct{}, len(vertex.holderOrder))
	out := make([]VertexID, 0, len(vertex.holderOrder))
	for _, eid := range vertex.holderOrder {
		e := g.edges[eid]
		n := e.other(v)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out, nil
}

// Segment is the result of FindBetween: the edge shared by two vertices,
// the direction sign of travel from low to high, the distance, and the
// interior vertices strictly between them in the direction of travel.
type Segment struct {
	Edge      EdgeID
	Direction Direction
	Distance  int
	Interior  []VertexID
}

// FindBetween requires lowV and highV to share exactly one edge (I4
// guarantees uniqueness) and returns that edge, the direction of travel
// from lowV to highV, the absolute distance, and any interior vertices
// strictly between them. Under this package's two-endpoint Edge model,
// Interior is always empty — see PairsAt's doc comment for why.
func (g *Graph) FindBetween(lowV, highV VertexID) (Segment, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	va, err := g.vertex(lowV)
	if err != nil {
		return Segment{}, err
	}
	vb, err := g.vertex(highV)
	if err != nil {
		return Segment{}, err
	}
	e, ok := g.sharedEdge(va, vb)
	if !ok {
		return Segment{}, ErrNotConnected
	}

	dir := DirLow
	if lowV == e.High {
		dir = DirHigh
	}

	return Segment{Edge: e.ID, Direction: dir, Distance: e.Length}, nil
}
