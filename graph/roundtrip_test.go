package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/snakegraph/snakegraph/graph"
)

// snapshot is a structural, order-independent view of a Graph used only by
// these round-trip tests — comparing unexported fields directly would
// couple the tests to internal layout, so we project through the public
// query API instead, matching the comparison style the pack's go-cmp users
// favor over reflect.DeepEqual.
type snapshot struct {
	edgeCount int
	pairCount int
}

func takeSnapshot(t *testing.T, g *graph.Graph) snapshot {
	t.Helper()
	stats := g.Stats()

	return snapshot{edgeCount: stats.Edges, pairCount: stats.Pairs}
}

// TestSplitMergeRoundTrip checks the round-trip law: split(a,v,b,at)
// followed by merge(v,a) and rejoining the two halves yields a graph
// isomorphic to the pre-split one, provided v acquired no new incidences
// in between. Rejoining here means merging the via vertex away entirely
// (which, for an edge split with no further incidences, restores the
// original vertex/edge count), not a literal un-split — the engine has no
// "undo split" primitive outside search's internal cleanup path.
func TestSplitMergeRoundTrip(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.Connect(a, b, 100)
	require.NoError(t, err)

	before := takeSnapshot(t, g)

	via, err := g.Split(a, graph.NewVertexSentinel, b, 40)
	require.NoError(t, err)

	// merge(via, a) folds via's two edges onto a, leaving a single a-b
	// edge plus the original straight-through pair collapsed away (a
	// vertex merged into has no pairs of its own to preserve here).
	survivor, err := g.Merge(via, a)
	require.NoError(t, err)
	require.Equal(t, a, survivor)

	after := takeSnapshot(t, g)

	if diff := cmp.Diff(before, after, cmpopts.EquateComparable(snapshot{})); diff != "" {
		t.Fatalf("post split+merge snapshot mismatch (-before +after):\n%s", diff)
	}
}

// The grow/shrink round-trip law lives in the reservation package's own
// tests; this file only exercises graph-layer round trips.
func TestSearchMaterializeCleanupIsExact(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	c, err := g.AddVertex("c")
	require.NoError(t, err)
	edgeAB, err := g.Connect(a, b, 50)
	require.NoError(t, err)
	edgeBC, err := g.Connect(b, c, 50)
	require.NoError(t, err)
	_, err = g.Join(a, b, c)
	require.NoError(t, err)

	before := takeSnapshot(t, g)

	_, err = g.Search(graph.OnEdge(edgeAB, 10), graph.OnEdge(edgeBC, 40), 0)
	require.NoError(t, err)

	after := takeSnapshot(t, g)
	if diff := cmp.Diff(before, after, cmpopts.EquateComparable(snapshot{})); diff != "" {
		t.Fatalf("search must leave the graph exactly as it found it (-before +after):\n%s", diff)
	}
}
