package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakegraph/snakegraph/graph"
	"github.com/snakegraph/snakegraph/reservation"
)

func noChoice(graph.VertexID, []graph.VertexID) (graph.VertexID, bool) { return "", false }

func firstChoice(_ graph.VertexID, candidates []graph.VertexID) (graph.VertexID, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	return candidates[0], true
}

// TestSimpleLineReserve replays a grow-then-shrink sequence on a single
// edge and checks the resulting snake geometry at each step.
func TestSimpleLineReserve(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.Connect(a, b, 100)
	require.NoError(t, err)

	eng := reservation.NewEngine(g)
	s, err := eng.AddSnake(a)
	require.NoError(t, err)

	grown, err := eng.Grow(s, reservation.Head, 10, firstChoice)
	require.NoError(t, err)
	assert.Equal(t, 10, grown)

	state, err := eng.SnakeState(s)
	require.NoError(t, err)
	assert.Equal(t, 10, state.Length)
	assert.Equal(t, []graph.VertexID{b, a}, state.Vertices)
	assert.Equal(t, 90, state.HeadOffset)
	assert.Equal(t, 0, state.TailOffset)

	grown, err = eng.Grow(s, reservation.Head, 90, firstChoice)
	require.NoError(t, err)
	assert.Equal(t, 90, grown)

	state, err = eng.SnakeState(s)
	require.NoError(t, err)
	assert.Equal(t, 100, state.Length)
	assert.Equal(t, 0, state.HeadOffset)
	assert.Equal(t, 0, state.TailOffset)

	shrunk, err := eng.Shrink(s, reservation.Tail, 80)
	require.NoError(t, err)
	assert.Equal(t, 80, shrunk)

	state, err = eng.SnakeState(s)
	require.NoError(t, err)
	assert.Equal(t, 20, state.Length)
	assert.Equal(t, 0, state.HeadOffset)
	assert.Equal(t, 80, state.TailOffset)

	shrunk, err = eng.Shrink(s, reservation.Head, 25)
	require.NoError(t, err)
	assert.Equal(t, 20, shrunk)

	state, err = eng.SnakeState(s)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Length)
	assert.Equal(t, 20, state.HeadOffset)
	assert.Equal(t, 80, state.TailOffset)
}

// TestContentionStop checks that growth into a fully reserved neighbouring
// interval stops exactly at the boundary.
func TestContentionStop(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	e, err := g.Connect(a, b, 100)
	require.NoError(t, err)
	_ = e

	eng := reservation.NewEngine(g)
	s1, err := eng.AddSnake(a)
	require.NoError(t, err)
	s2, err := eng.AddSnake(b)
	require.NoError(t, err)

	_, err = eng.Grow(s1, reservation.Head, 40, firstChoice)
	require.NoError(t, err)
	_, err = eng.Shrink(s1, reservation.Tail, 20)
	require.NoError(t, err)
	// s1 now occupies [20,40).

	_, err = eng.Grow(s2, reservation.Head, 40, firstChoice)
	require.NoError(t, err)
	_, err = eng.Shrink(s2, reservation.Tail, 20)
	require.NoError(t, err)
	// s2 now occupies [60,80).

	grown, err := eng.Grow(s1, reservation.Head, 100, firstChoice)
	require.NoError(t, err)
	assert.Equal(t, 20, grown, "s1's head must stop exactly at s2's reserved boundary")
}

func TestGrowOracleRefuses(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.Connect(a, b, 10)
	require.NoError(t, err)

	eng := reservation.NewEngine(g)
	s, err := eng.AddSnake(a)
	require.NoError(t, err)

	grown, err := eng.Grow(s, reservation.Head, 5, noChoice)
	require.NoError(t, err)
	assert.Equal(t, 0, grown)
}

func TestMoveIsLengthPreserving(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.Connect(a, b, 100)
	require.NoError(t, err)

	eng := reservation.NewEngine(g)
	s, err := eng.AddSnake(a)
	require.NoError(t, err)

	_, err = eng.Grow(s, reservation.Head, 30, firstChoice)
	require.NoError(t, err)

	before, err := eng.SnakeState(s)
	require.NoError(t, err)

	moved, err := eng.Move(s, reservation.Head, 10, firstChoice)
	require.NoError(t, err)
	assert.Equal(t, 10, moved)

	after, err := eng.SnakeState(s)
	require.NoError(t, err)
	assert.Equal(t, before.Length, after.Length)
}

func TestQueryFindsSharedVertexOccupants(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.Connect(a, b, 10)
	require.NoError(t, err)

	eng := reservation.NewEngine(g)
	s1, err := eng.AddSnake(a)
	require.NoError(t, err)
	s2, err := eng.AddSnake(a)
	require.NoError(t, err)

	others, err := eng.Query(s1)
	require.NoError(t, err)
	assert.Equal(t, []reservation.SnakeID{s2}, others)
}

func TestRemoveSnakeReleasesReservations(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.Connect(a, b, 10)
	require.NoError(t, err)

	eng := reservation.NewEngine(g)
	s1, err := eng.AddSnake(a)
	require.NoError(t, err)
	_, err = eng.Grow(s1, reservation.Head, 10, firstChoice)
	require.NoError(t, err)

	require.NoError(t, eng.RemoveSnake(s1))

	s2, err := eng.AddSnake(a)
	require.NoError(t, err)
	grown, err := eng.Grow(s2, reservation.Head, 10, firstChoice)
	require.NoError(t, err)
	assert.Equal(t, 10, grown, "released reservations must not block a fresh snake")
}
