package graph

// File: construct.go
// Role: structural mutation — connect, split, join, merge.
//
// Policy: every precondition is checked before any field is written; on
// any validation failure the graph is left byte-for-byte as it was.

// sharedEdge returns the single edge both a and b are holders of, if any
// (I4 guarantees at most one). ok is false if they share none.
func (g *Graph) sharedEdge(a, b *Vertex) (*Edge, bool) {
	// a typically has the smaller holder set in practice (fresh vertices);
	// iterate whichever is shorter.
	from, against := a, b
	if len(b.holderOrder) < len(a.holderOrder) {
		from, against = b, a
	}
	for _, eid := range from.holderOrder {
		if against.hasHolder(eid) {
			return g.edges[eid], true
		}
	}

	return nil, false
}

// Connect creates a new edge of the given length directly joining a and b.
// Requires a != b, both existing, and that a and b do not already share
// any edge (I4).
func (g *Graph) Connect(a, b VertexID, length int) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if a == b {
		return "", ErrSameVertex
	}
	if length <= 0 {
		return "", ErrBadLength
	}
	va, err := g.vertex(a)
	if err != nil {
		return "", err
	}
	vb, err := g.vertex(b)
	if err != nil {
		return "", err
	}
	if _, shared := g.sharedEdge(va, vb); shared {
		return "", ErrAlreadyConnected
	}

	eid := g.nextEdgeID()
	e := newEdge(eid, a, b, length)
	g.edges[eid] = e
	va.addHolder(eid)
	vb.addHolder(eid)
	g.recomputeSiblings()

	return eid, nil
}

// endpoints returns the edge's (low, high) vertex pair.
func (e *Edge) endpoints() (VertexID, VertexID) { return e.Low, e.High }

// NewVertexSentinel, passed as the via argument to Split, requests that a
// fresh vertex id be synthesized rather than reusing an existing one.
const NewVertexSentinel VertexID = ""

// Split inserts via as the sole interior point of the edge directly
// connecting a and b, at integer offset at from the a side. A negative at
// means length-|at|. If via == NewVertexSentinel a fresh vertex is
// created; otherwise via must already exist and be isolated (an empty
// holder set).
//
// The existing edge is repurposed in place to become the Low-via half
// (same EdgeID and Low, new Length and High), whichever of a and b is its
// Low endpoint; a brand-new edge is created for the via-High half. No
// edge is ever deleted from the graph, matching the
// teacher's "edges are never destroyed" policy even though the edge
// connecting a and b is, from the caller's point of view, replaced.
func (g *Graph) Split(a VertexID, via VertexID, b VertexID, at int) (VertexID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.splitInner(a, via, b, at)
}

// splitInner is Split's body, factored out so search.go's materialize can
// call it while already holding g.mu (Search performs its own Split to
// turn a mid-edge endpoint into a real vertex).
func (g *Graph) splitInner(a VertexID, via VertexID, b VertexID, at int) (VertexID, error) {
	va, err := g.vertex(a)
	if err != nil {
		return "", err
	}
	vb, err := g.vertex(b)
	if err != nil {
		return "", err
	}
	e, shared := g.sharedEdge(va, vb)
	if !shared {
		return "", ErrNotConnected
	}
	// Every edge has exactly two endpoints (see types.go), so a shared
	// edge between a and b necessarily has them as its Low/High pair.
	low, high := e.endpoints()

	normalized := at
	if normalized < 0 {
		normalized = e.Length + normalized
	}
	var posFromLow int
	if a == low {
		posFromLow = normalized
	} else {
		posFromLow = e.Length - normalized
	}
	if posFromLow <= 0 || posFromLow >= e.Length {
		return "", ErrBadOffset
	}

	var viaVertex *Vertex
	if via == NewVertexSentinel {
		id := g.nextVertexID()
		for g.vertices[id] != nil {
			id = g.nextVertexID()
		}
		viaVertex = newVertex(id)
	} else {
		if via == a || via == b {
			return "", ErrSplitOntoOccupiedVertex
		}
		existing, ok := g.vertices[via]
		if !ok {
			return "", ErrUnknownVertex
		}
		if len(existing.holderOrder) != 0 {
			return "", ErrSplitOntoOccupiedVertex
		}
		viaVertex = existing
	}

	lengthLowVia := posFromLow
	lengthViaHigh := e.Length - posFromLow

	lowV := g.vertices[low]
	highV := g.vertices[high]

	// Rewrite pairs at low/high that referenced the direction toward the
	// other original endpoint, so they now point toward via instead —
	// the edge id (e.ID) does not change for the low-via half, so a pair
	// referencing (e.ID, signAt(low-side)) is automatically still correct
	// without rewriting; only the far side's pairs, if any referenced
	// e.ID with the opposite sign, must move to the new edge id.
	newEdgeID := g.nextEdgeID()

	// e becomes low-via; its High changes from `high` to `via`.
	e.High = viaVertex.ID
	e.Length = lengthLowVia

	newEdge := newEdge(newEdgeID, viaVertex.ID, high, lengthViaHigh)
	g.edges[newEdgeID] = newEdge

	// high no longer holds e; it now holds newEdge instead.
	highV.removeHolder(e.ID)
	highV.addHolder(newEdgeID)
	viaVertex.addHolder(e.ID)
	viaVertex.addHolder(newEdgeID)
	g.vertices[viaVertex.ID] = viaVertex

	// Any pair at `high` that referenced e.ID (direction toward low/via)
	// must be rewritten to reference newEdgeID with the same sign meaning
	// "toward via" (high is still newEdge's High endpoint, so the sign is
	// unchanged — only the edge id moves).
	for i, p := range highV.Pairs {
		highV.Pairs[i] = rewriteSide(p, e.ID, newEdgeID)
	}
	_ = lowV // low's pairs reference e.ID unchanged; nothing to rewrite.

	// New straight-through pair at via connecting the two halves.
	straightThrough := canonicalPair(
		PairSide{Edge: e.ID, Sign: e.signAt(viaVertex.ID)},
		PairSide{Edge: newEdgeID, Sign: newEdge.signAt(viaVertex.ID)},
	)
	viaVertex.Pairs = append(viaVertex.Pairs, straightThrough)

	g.recomputeSiblings()

	return viaVertex.ID, nil
}

// rewriteSide returns p with any PairSide naming `from` renamed to `to`,
// preserving Sign (the vertex's position — low/high — on the renamed edge
// is unchanged by a split of the *other* half, only the identifier is).
func rewriteSide(p Pair, from, to EdgeID) Pair {
	if p.A.Edge == from {
		p.A.Edge = to
	}
	if p.B.Edge == from {
		p.B.Edge = to
	}

	return p
}

// Join adds the canonical pair authorizing through-travel from the a-side
// to the b-side at via. via must be directly connected to both a and b via
// two distinct edges. Returns true if the pair was newly added, false if
// it already existed.
func (g *Graph) Join(a, via, b VertexID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	vVia, err := g.vertex(via)
	if err != nil {
		return false, err
	}
	vA, err := g.vertex(a)
	if err != nil {
		return false, err
	}
	vB, err := g.vertex(b)
	if err != nil {
		return false, err
	}

	edgeA, ok := g.sharedEdge(vVia, vA)
	if !ok {
		return false, ErrNotConnected
	}
	edgeB, ok := g.sharedEdge(vVia, vB)
	if !ok {
		return false, ErrNotConnected
	}
	if edgeA.ID == edgeB.ID {
		return false, ErrSameEdgeJoin
	}

	pair := canonicalPair(
		PairSide{Edge: edgeA.ID, Sign: edgeA.signAt(via)},
		PairSide{Edge: edgeB.ID, Sign: edgeB.signAt(via)},
	)
	if vVia.hasPair(pair) {
		return false, nil
	}
	vVia.Pairs = append(vVia.Pairs, pair)

	return true, nil
}

// Merge unifies a and b into a single vertex, returning the surviving id.
// a == b is a no-op. The survivor is whichever of a, b has the larger
// holder set; ties keep a. Both I5 (no edge ends up with the survivor at
// both ends) and I4 (no two distinct edges end up sharing both endpoints)
// are checked in full before any mutation.
func (g *Graph) Merge(a, b VertexID) (VertexID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if a == b {
		if _, err := g.vertex(a); err != nil {
			return "", err
		}

		return a, nil
	}

	va, err := g.vertex(a)
	if err != nil {
		return "", err
	}
	vb, err := g.vertex(b)
	if err != nil {
		return "", err
	}

	survivor, loser := va, vb
	if len(vb.holderOrder) > len(va.holderOrder) {
		survivor, loser = vb, va
	}

	// Compute the post-merge endpoint pair for every edge that will be
	// rewritten, and pre-flight both invariants before touching anything.
	rewritten := make(map[EdgeID][2]VertexID, len(loser.holderOrder))
	for _, eid := range loser.holderOrder {
		e := g.edges[eid]
		newLow, newHigh := e.Low, e.High
		if newLow == loser.ID {
			newLow = survivor.ID
		}
		if newHigh == loser.ID {
			newHigh = survivor.ID
		}
		if newLow == newHigh {
			return "", ErrMergeOnSameEdge
		}
		rewritten[eid] = [2]VertexID{newLow, newHigh}
	}

	seen := make(map[[2]VertexID]EdgeID, len(survivor.holderOrder)+len(rewritten))
	key := func(lo, hi VertexID) [2]VertexID {
		if lo > hi {
			lo, hi = hi, lo
		}

		return [2]VertexID{lo, hi}
	}
	for _, eid := range survivor.holderOrder {
		e := g.edges[eid]
		k := key(e.Low, e.High)
		if other, dup := seen[k]; dup && other != eid {
			return "", ErrDoubleConnectionAfterMerge
		}
		seen[k] = eid
	}
	for eid, ends := range rewritten {
		k := key(ends[0], ends[1])
		if other, dup := seen[k]; dup && other != eid {
			return "", ErrDoubleConnectionAfterMerge
		}
		seen[k] = eid
	}

	// All preflight checks passed — mutate.
	for eid, ends := range rewritten {
		e := g.edges[eid]
		e.Low, e.High = ends[0], ends[1]
		survivor.addHolder(eid)
	}

	// Union pairs, recomputing each side's sign against current edge
	// state rather than trusting the loser's stale copy.
	for _, p := range loser.Pairs {
		edgeA, ok := g.edges[p.A.Edge]
		if !ok {
			return "", newDanglingPairEdgeError(loser.ID, p)
		}
		edgeB, ok := g.edges[p.B.Edge]
		if !ok {
			return "", newDanglingPairEdgeError(loser.ID, p)
		}
		np := canonicalPair(
			PairSide{Edge: p.A.Edge, Sign: edgeA.signAt(survivor.ID)},
			PairSide{Edge: p.B.Edge, Sign: edgeB.signAt(survivor.ID)},
		)
		if !survivor.hasPair(np) {
			survivor.Pairs = append(survivor.Pairs, np)
		}
	}

	delete(g.vertices, loser.ID)
	g.recomputeSiblings()

	return survivor.ID, nil
}
