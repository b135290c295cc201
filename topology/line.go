package topology

import (
	"fmt"

	"github.com/snakegraph/snakegraph/graph"
)

const (
	methodLine  = "Line"
	minLineSize = 2
)

// Line builds a simple n-vertex commuter line v0 - v1 - ... - v(n-1), each
// segment segmentLength long, and joins every interior vertex so the line
// reads as through-routable end to end. Returns the vertices in order, v0
// first.
func Line(g *graph.Graph, n int, segmentLength int) ([]graph.VertexID, error) {
	if n < minLineSize {
		return nil, wrapf(methodLine, fmt.Errorf("n=%d < min=%d: %w", n, minLineSize, ErrTooFewVertices))
	}
	if segmentLength <= 0 {
		return nil, wrapf(methodLine, ErrBadSegmentLength)
	}

	verts := make([]graph.VertexID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(indexID("line", i))
		if err != nil {
			return nil, wrapf(methodLine, fmt.Errorf("AddVertex(%d): %w", i, err))
		}
		verts[i] = id
	}

	for i := 1; i < n; i++ {
		if _, err := g.Connect(verts[i-1], verts[i], segmentLength); err != nil {
			return nil, wrapf(methodLine, fmt.Errorf("Connect(%d,%d): %w", i-1, i, err))
		}
	}
	for i := 1; i < n-1; i++ {
		if _, err := g.Join(verts[i-1], verts[i], verts[i+1]); err != nil {
			return nil, wrapf(methodLine, fmt.Errorf("Join at %d: %w", i, err))
		}
	}

	return verts, nil
}
