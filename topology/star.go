package topology

import (
	"fmt"

	"github.com/snakegraph/snakegraph/graph"
)

const (
	methodStar   = "Star"
	minStarSpokes = 2
)

// Star builds a hub-and-spoke layout: one "Center" vertex and spokes
// leaves, each spoke spokeLength long. No pair is ever added at the hub,
// so a snake arriving at it along a spoke has no authorized continuation
// and stops there; only a snake starting at the hub is offered every
// spoke. The layout matches builder/impl_star.go's topology but
// deliberately omits builder's directed reverse-spoke concept
// (graph.Graph edges are undirected; traversal direction is a
// reservation-engine concern, not a graph one).
// Returns the hub id and the leaf ids in spoke-index order.
func Star(g *graph.Graph, spokes int, spokeLength int) (graph.VertexID, []graph.VertexID, error) {
	if spokes < minStarSpokes {
		return "", nil, wrapf(methodStar, fmt.Errorf("spokes=%d < min=%d: %w", spokes, minStarSpokes, ErrTooFewVertices))
	}
	if spokeLength <= 0 {
		return "", nil, wrapf(methodStar, ErrBadSegmentLength)
	}

	hub, err := g.AddVertex(centerVertexID)
	if err != nil {
		return "", nil, wrapf(methodStar, fmt.Errorf("AddVertex(%s): %w", centerVertexID, err))
	}

	leaves := make([]graph.VertexID, spokes)
	for i := 0; i < spokes; i++ {
		leafID, err := g.AddVertex(indexID("leaf", i))
		if err != nil {
			return "", nil, wrapf(methodStar, fmt.Errorf("AddVertex(leaf %d): %w", i, err))
		}
		if _, err := g.Connect(hub, leafID, spokeLength); err != nil {
			return "", nil, wrapf(methodStar, fmt.Errorf("Connect(hub, leaf %d): %w", i, err))
		}
		leaves[i] = leafID
	}

	return hub, leaves, nil
}
