package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakegraph/snakegraph/graph"
)

func mustVertex(t *testing.T, g *graph.Graph) graph.VertexID {
	t.Helper()
	id, err := g.AddVertex("")
	require.NoError(t, err)

	return id
}

func TestAddVertexDuplicateID(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddVertex("a")
	require.NoError(t, err)

	_, err = g.AddVertex("a")
	assert.ErrorIs(t, err, graph.ErrDuplicateID)
}

func TestConnectRejectsSameVertex(t *testing.T) {
	g := graph.NewGraph()
	a := mustVertex(t, g)
	_, err := g.Connect(a, a, 10)
	assert.ErrorIs(t, err, graph.ErrSameVertex)
}

func TestConnectRejectsBadLength(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	_, err := g.Connect(a, b, 0)
	assert.ErrorIs(t, err, graph.ErrBadLength)
	_, err = g.Connect(a, b, -5)
	assert.ErrorIs(t, err, graph.ErrBadLength)
}

func TestConnectRejectsAlreadyConnected(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	_, err := g.Connect(a, b, 10)
	require.NoError(t, err)

	_, err = g.Connect(a, b, 20)
	assert.ErrorIs(t, err, graph.ErrAlreadyConnected)
}

// TestSplitPreservesStraightThrough checks that split preserves
// straight-through, and that a subsequent search finds [a, m, b].
func TestSplitPreservesStraightThrough(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	_, err := g.Connect(a, b, 100)
	require.NoError(t, err)

	m, err := g.Split(a, graph.NewVertexSentinel, b, 40)
	require.NoError(t, err)

	pairs, err := g.PairsAt(m)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.ElementsMatch(t, []graph.VertexID{a, b}, []graph.VertexID{pairs[0].A, pairs[0].B})

	res, err := g.Search(graph.AtVertex(a), graph.AtVertex(b), 0)
	require.NoError(t, err)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, 100, res.Distance)
}

func TestSplitBoundaries(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	_, err := g.Connect(a, b, 10)
	require.NoError(t, err)

	_, err = g.Split(a, graph.NewVertexSentinel, b, 0)
	assert.ErrorIs(t, err, graph.ErrBadOffset)

	_, err = g.Split(a, graph.NewVertexSentinel, b, 10)
	assert.ErrorIs(t, err, graph.ErrBadOffset)

	_, err = g.Split(a, graph.NewVertexSentinel, b, 11)
	assert.ErrorIs(t, err, graph.ErrBadOffset)

	g2 := graph.NewGraph()
	a2, b2 := mustVertex(t, g2), mustVertex(t, g2)
	_, err = g2.Connect(a2, b2, 10)
	require.NoError(t, err)
	_, err = g2.Split(a2, graph.NewVertexSentinel, b2, 1)
	assert.NoError(t, err)

	g3 := graph.NewGraph()
	a3, b3 := mustVertex(t, g3), mustVertex(t, g3)
	_, err = g3.Connect(a3, b3, 10)
	require.NoError(t, err)
	_, err = g3.Split(a3, graph.NewVertexSentinel, b3, 9)
	assert.NoError(t, err)
}

// TestTriangleLegality checks that a 3-cycle of edges is legal to build.
func TestTriangleLegality(t *testing.T) {
	g := graph.NewGraph()
	a, b, c := mustVertex(t, g), mustVertex(t, g), mustVertex(t, g)

	_, err := g.Connect(a, b, 100)
	require.NoError(t, err)
	_, err = g.Connect(b, c, 100)
	require.NoError(t, err)
	_, err = g.Connect(c, a, 100)
	require.NoError(t, err)
}

// TestDoubleConnectionRefusal checks that merging both sides of two
// parallel edges fails atomically and leaves the graph untouched.
func TestDoubleConnectionRefusal(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	a2, b2 := mustVertex(t, g), mustVertex(t, g)

	_, err := g.Connect(a, b, 10)
	require.NoError(t, err)
	_, err = g.Connect(a2, b2, 10)
	require.NoError(t, err)

	merged, err := g.Merge(a, a2)
	require.NoError(t, err)

	beforeStats := g.Stats()

	_, err = g.Merge(b, b2)
	assert.ErrorIs(t, err, graph.ErrDoubleConnectionAfterMerge)

	assert.Equal(t, beforeStats, g.Stats(), "a rejected merge must leave the graph unchanged")
	assert.NotEmpty(t, merged)
}

// TestJunctionChoiceViaOracle checks that join(a,m,b) but not join(a,m,c)
// leaves PairPartners from m via the a-edge offering only b.
func TestJunctionChoiceViaOracle(t *testing.T) {
	g := graph.NewGraph()
	a, m, b, c := mustVertex(t, g), mustVertex(t, g), mustVertex(t, g), mustVertex(t, g)

	_, err := g.Connect(a, m, 10)
	require.NoError(t, err)
	_, err = g.Connect(m, b, 10)
	require.NoError(t, err)
	_, err = g.Connect(m, c, 10)
	require.NoError(t, err)

	added, err := g.Join(a, m, b)
	require.NoError(t, err)
	assert.True(t, added)

	edgeAM, err := g.FindBetween(a, m)
	require.NoError(t, err)

	candidates, err := g.PairPartners(m, edgeAM.Edge)
	require.NoError(t, err)
	assert.Equal(t, []graph.VertexID{b}, candidates)
}

func TestFindVertexBoundaries(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	e, err := g.Connect(a, b, 10)
	require.NoError(t, err)

	v, ok, err := g.FindVertex(e, 0, graph.FindNearest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, a, v)

	v, ok, err = g.FindVertex(e, 10, graph.FindNearest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, b, v)

	_, ok, err = g.FindVertex(e, 0, graph.FindBefore)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMergeSurvivorIsLargerHolderSet(t *testing.T) {
	g := graph.NewGraph()
	hub := mustVertex(t, g)
	leaf1, leaf2, leaf3 := mustVertex(t, g), mustVertex(t, g), mustVertex(t, g)
	_, err := g.Connect(hub, leaf1, 1)
	require.NoError(t, err)
	_, err = g.Connect(hub, leaf2, 1)
	require.NoError(t, err)
	_, err = g.Connect(hub, leaf3, 1)
	require.NoError(t, err)

	isolated := mustVertex(t, g)

	survivor, err := g.Merge(isolated, hub)
	require.NoError(t, err)
	assert.Equal(t, hub, survivor)
}

func TestSearchNoPath(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)

	_, err := g.Search(graph.AtVertex(a), graph.AtVertex(b), 0)
	assert.ErrorIs(t, err, graph.ErrNoPath)
}

func TestSearchRestoresGraphAfterMaterializing(t *testing.T) {
	g := graph.NewGraph()
	a, b := mustVertex(t, g), mustVertex(t, g)
	_, err := g.Connect(a, b, 100)
	require.NoError(t, err)

	before := g.Stats()

	res, err := g.Search(graph.OnEdge(mustOnlyEdge(t, g), 30), graph.AtVertex(b), 0)
	require.NoError(t, err)
	assert.Equal(t, 70, res.Distance)

	assert.Equal(t, before, g.Stats(), "synthesized search endpoints must be cleaned up")
}

func mustOnlyEdge(t *testing.T, g *graph.Graph) graph.EdgeID {
	t.Helper()
	edges := g.AllEdges()
	require.Len(t, edges, 1)

	return edges[0]
}
