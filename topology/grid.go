package topology

import (
	"fmt"

	"github.com/snakegraph/snakegraph/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows x cols orthogonal grid with 4-neighborhood segments
// (right and bottom neighbours per cell), each segmentLength long,
// mirroring builder/impl_grid.go's row-major "r,c" id scheme and emission
// order. Every interior vertex is joined straight-through along both its
// row and its column, so a snake travelling along a row or column default-
// continues through an intersection. No pair joins a row segment to a
// column segment, so a snake arriving at a four-way intersection is
// offered only the single straight-ahead continuation; it cannot turn.
// Returns the vertex grid indexed [r][c].
func Grid(g *graph.Graph, rows, cols int, segmentLength int) ([][]graph.VertexID, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, wrapf(methodGrid, fmt.Errorf("rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices))
	}
	if segmentLength <= 0 {
		return nil, wrapf(methodGrid, ErrBadSegmentLength)
	}

	verts := make([][]graph.VertexID, rows)
	for r := 0; r < rows; r++ {
		verts[r] = make([]graph.VertexID, cols)
		for c := 0; c < cols; c++ {
			id, err := g.AddVertex(gridID(r, c))
			if err != nil {
				return nil, wrapf(methodGrid, fmt.Errorf("AddVertex(%d,%d): %w", r, c, err))
			}
			verts[r][c] = id
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if _, err := g.Connect(verts[r][c], verts[r][c+1], segmentLength); err != nil {
					return nil, wrapf(methodGrid, fmt.Errorf("Connect(%d,%d)-(%d,%d): %w", r, c, r, c+1, err))
				}
			}
			if r+1 < rows {
				if _, err := g.Connect(verts[r][c], verts[r+1][c], segmentLength); err != nil {
					return nil, wrapf(methodGrid, fmt.Errorf("Connect(%d,%d)-(%d,%d): %w", r, c, r+1, c, err))
				}
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 1; c < cols-1; c++ {
			if _, err := g.Join(verts[r][c-1], verts[r][c], verts[r][c+1]); err != nil {
				return nil, wrapf(methodGrid, fmt.Errorf("Join row at (%d,%d): %w", r, c, err))
			}
		}
	}
	for c := 0; c < cols; c++ {
		for r := 1; r < rows-1; r++ {
			if _, err := g.Join(verts[r-1][c], verts[r][c], verts[r+1][c]); err != nil {
				return nil, wrapf(methodGrid, fmt.Errorf("Join col at (%d,%d): %w", r, c, err))
			}
		}
	}

	return verts, nil
}
