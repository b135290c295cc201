package topology

import (
	"fmt"

	"github.com/snakegraph/snakegraph/graph"
)

const (
	methodLoop  = "Loop"
	minLoopSize = 3
)

// Loop builds an n-vertex closed ring v0 - v1 - ... - v(n-1) - v0, each
// segment segmentLength long, joined straight-through at every vertex
// (including the wraparound join at v0), mirroring builder/impl_cycle.go's
// emission order.
func Loop(g *graph.Graph, n int, segmentLength int) ([]graph.VertexID, error) {
	if n < minLoopSize {
		return nil, wrapf(methodLoop, fmt.Errorf("n=%d < min=%d: %w", n, minLoopSize, ErrTooFewVertices))
	}
	if segmentLength <= 0 {
		return nil, wrapf(methodLoop, ErrBadSegmentLength)
	}

	verts := make([]graph.VertexID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(indexID("loop", i))
		if err != nil {
			return nil, wrapf(methodLoop, fmt.Errorf("AddVertex(%d): %w", i, err))
		}
		verts[i] = id
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if _, err := g.Connect(verts[i], verts[j], segmentLength); err != nil {
			return nil, wrapf(methodLoop, fmt.Errorf("Connect(%d,%d): %w", i, j, err))
		}
	}
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		if _, err := g.Join(verts[prev], verts[i], verts[next]); err != nil {
			return nil, wrapf(methodLoop, fmt.Errorf("Join at %d: %w", i, err))
		}
	}

	return verts, nil
}
