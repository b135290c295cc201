package topology

import (
	"fmt"

	"github.com/snakegraph/snakegraph/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelRim   = 3
)

// Wheel builds Wheel = Loop(rimSize) + a "Center" hub with a spoke to
// every rim vertex (mirroring builder/impl_wheel.go's Wₙ = Cₙ₋₁ + Center
// definition, adjusted to this package's rim-size-first signature since
// there is no shared n to split). The rim stays straight-through joined
// exactly as Loop leaves it; the hub's spokes are left unjoined to each
// other and to the rim, so a snake arriving along a spoke, at the hub or
// at a rim vertex, has no authorized continuation and stops there.
// Returns the hub id and the rim vertices in ring order.
func Wheel(g *graph.Graph, rimSize int, rimLength, spokeLength int) (graph.VertexID, []graph.VertexID, error) {
	if rimSize < minWheelRim {
		return "", nil, wrapf(methodWheel, fmt.Errorf("rimSize=%d < min=%d: %w", rimSize, minWheelRim, ErrTooFewVertices))
	}
	if spokeLength <= 0 {
		return "", nil, wrapf(methodWheel, ErrBadSegmentLength)
	}

	rim, err := Loop(g, rimSize, rimLength)
	if err != nil {
		return "", nil, wrapf(methodWheel, fmt.Errorf("rim: %w", err))
	}

	hub, err := g.AddVertex(centerVertexID)
	if err != nil {
		return "", nil, wrapf(methodWheel, fmt.Errorf("AddVertex(%s): %w", centerVertexID, err))
	}

	for i, v := range rim {
		if _, err := g.Connect(hub, v, spokeLength); err != nil {
			return "", nil, wrapf(methodWheel, fmt.Errorf("Connect(hub, rim %d): %w", i, err))
		}
	}

	return hub, rim, nil
}
