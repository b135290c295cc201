package reservation

import "github.com/snakegraph/snakegraph/graph"

// edgeSpan converts a span measured from nearVertex (increasing away from
// it) into the edge's own Low-based canonical coordinates. nearVertex must
// be one of the edge's two endpoints.
func edgeSpan(details graph.EdgeDetails, nearVertex graph.VertexID, localLow, localHigh int) (int, int) {
	if nearVertex == details.LowVertex {
		return localLow, localHigh
	}

	return details.Length - localHigh, details.Length - localLow
}

// freeForwardExcluding returns how far from position `from` (toward
// `length`) is unreserved by any snake other than exclude.
func (e *Engine) freeForwardExcluding(edgeID graph.EdgeID, from, length int, exclude SnakeID) int {
	best := length
	for _, iv := range e.edgeIntervals[edgeID] {
		if iv.snake == exclude {
			continue
		}
		if iv.low >= from && iv.low < best {
			best = iv.low
		}
	}

	return best - from
}

// freeBackwardExcluding returns how far from position `from` (toward 0)
// is unreserved by any snake other than exclude.
func (e *Engine) freeBackwardExcluding(edgeID graph.EdgeID, from int, exclude SnakeID) int {
	best := 0
	for _, iv := range e.edgeIntervals[edgeID] {
		if iv.snake == exclude {
			continue
		}
		if iv.high <= from && iv.high > best {
			best = iv.high
		}
	}

	return from - best
}

// vertexOccupiedByOther reports whether any snake other than exclude
// currently occupies v.
func (e *Engine) vertexOccupiedByOther(v graph.VertexID, exclude SnakeID) bool {
	for sid := range e.vertexOccupants[v] {
		if sid != exclude {
			return true
		}
	}

	return false
}

// reserveSpan records that snake s occupies [low, high) on edgeID,
// merging with any adjacent or overlapping span s already owns there. It
// returns an error wrapping ErrIntervalConflict if the span conflicts with
// another snake's interval — callers are expected to have already
// confirmed free space, so this is a defensive check rather than an
// expected outcome.
func (e *Engine) reserveSpan(edgeID graph.EdgeID, low, high int, s SnakeID) error {
	if low >= high {
		return nil
	}

	list := e.edgeIntervals[edgeID]
	merged := interval{low: low, high: high, snake: s}
	out := make([]interval, 0, len(list)+1)
	for _, iv := range list {
		if iv.snake == s {
			if iv.high < merged.low || iv.low > merged.high {
				out = append(out, iv)
				continue
			}
			// Overlaps or touches our own existing span — absorb it.
			if iv.low < merged.low {
				merged.low = iv.low
			}
			if iv.high > merged.high {
				merged.high = iv.high
			}
			continue
		}
		if iv.low < merged.high && merged.low < iv.high {
			return newIntervalConflictError(edgeID, list, merged)
		}
		out = append(out, iv)
	}
	// Insert merged in sorted position.
	idx := 0
	for idx < len(out) && out[idx].low < merged.low {
		idx++
	}
	out = append(out, interval{})
	copy(out[idx+1:], out[idx:])
	out[idx] = merged

	e.edgeIntervals[edgeID] = out

	return nil
}

// releaseSpan removes the portion [low, high) of edge edgeID owned by s,
// shrinking or splitting s's existing interval(s) there as needed.
func (e *Engine) releaseSpan(edgeID graph.EdgeID, low, high int, s SnakeID) {
	if low >= high {
		return
	}

	list := e.edgeIntervals[edgeID]
	out := make([]interval, 0, len(list)+1)
	for _, iv := range list {
		if iv.snake != s || iv.high <= low || iv.low >= high {
			out = append(out, iv)
			continue
		}
		if iv.low < low {
			out = append(out, interval{low: iv.low, high: low, snake: s})
		}
		if iv.high > high {
			out = append(out, interval{low: high, high: iv.high, snake: s})
		}
	}
	e.edgeIntervals[edgeID] = out
}

// touchesElsewhere reports whether v appears in vertices[skipLow :
// len-skipHigh], i.e. anywhere except the skipLow positions at the front
// and the skipHigh positions at the back — the end vertex currently being
// released and its immediate neighbour. No single edge can place the same
// vertex at both its ends, so the adjacent position can never equal v
// anyway; the only real case this guards is a 3+ hop loop bringing the
// snake back through a vertex it already released elsewhere along its own
// path.
func touchesElsewhere(vertices []graph.VertexID, v graph.VertexID, skipLow, skipHigh int) bool {
	hi := len(vertices) - skipHigh
	for i := skipLow; i < hi; i++ {
		if vertices[i] == v {
			return true
		}
	}

	return false
}

// addOccupant registers s as occupying vertex v.
func (e *Engine) addOccupant(v graph.VertexID, s SnakeID) {
	set, ok := e.vertexOccupants[v]
	if !ok {
		set = make(map[SnakeID]struct{})
		e.vertexOccupants[v] = set
	}
	set[s] = struct{}{}
}

// removeOccupant unregisters s from vertex v.
func (e *Engine) removeOccupant(v graph.VertexID, s SnakeID) {
	set, ok := e.vertexOccupants[v]
	if !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(e.vertexOccupants, v)
	}
}
