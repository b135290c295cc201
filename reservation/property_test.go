package reservation_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/snakegraph/snakegraph/graph"
	"github.com/snakegraph/snakegraph/reservation"
	"github.com/snakegraph/snakegraph/topology"
)

// symmetricChoice always takes the first candidate — it mimics a snake
// that prefers to go straight at a junction rather than branch off.
func symmetricChoice(_ graph.VertexID, candidates []graph.VertexID) (graph.VertexID, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	return candidates[0], true
}

// TestPropertyRandomGrowShrinkMoveSequences replays random, gofuzz-seeded
// sequences of Grow/Shrink/Move/AddSnake/RemoveSnake and checks that the
// universal invariants — non-negative length and symmetric vertex
// occupancy — survive every call, success or failure.
func TestPropertyRandomGrowShrinkMoveSequences(t *testing.T) {
	const seeds = 8
	const opsPerSeed = 150

	for seed := int64(0); seed < seeds; seed++ {
		g := graph.NewGraph()
		verts, err := topology.Line(g, 6, 10)
		require.NoError(t, err)

		eng := reservation.NewEngine(g)

		f := fuzz.NewWithSeed(seed)
		var live []reservation.SnakeID

		pickVertex := func() graph.VertexID {
			var n uint32
			f.Fuzz(&n)

			return verts[int(n)%len(verts)]
		}

		pickAmount := func() int {
			var n uint32
			f.Fuzz(&n)

			return int(n%15) + 1
		}

		pickEnd := func() reservation.End {
			var n uint32
			f.Fuzz(&n)
			if n%2 == 0 {
				return reservation.Head
			}

			return reservation.Tail
		}

		for op := 0; op < opsPerSeed; op++ {
			var choice uint32
			f.Fuzz(&choice)

			switch choice % 5 {
			case 0:
				id, err := eng.AddSnake(pickVertex())
				require.NoError(t, err)
				live = append(live, id)
			case 1:
				if len(live) == 0 {
					continue
				}
				var n uint32
				f.Fuzz(&n)
				idx := int(n) % len(live)
				id := live[idx]
				_, err := eng.Grow(id, pickEnd(), pickAmount(), symmetricChoice)
				require.NoError(t, err)
			case 2:
				if len(live) == 0 {
					continue
				}
				var n uint32
				f.Fuzz(&n)
				idx := int(n) % len(live)
				id := live[idx]
				_, err := eng.Shrink(id, pickEnd(), pickAmount())
				require.NoError(t, err)
			case 3:
				if len(live) == 0 {
					continue
				}
				var n uint32
				f.Fuzz(&n)
				idx := int(n) % len(live)
				id := live[idx]
				_, err := eng.Move(id, pickEnd(), pickAmount(), symmetricChoice)
				require.NoError(t, err)
			case 4:
				if len(live) == 0 {
					continue
				}
				var n uint32
				f.Fuzz(&n)
				idx := int(n) % len(live)
				id := live[idx]
				require.NoError(t, eng.RemoveSnake(id))
				live = append(live[:idx], live[idx+1:]...)
			}

			checkReservationInvariants(t, eng, live)
		}
	}
}

// checkReservationInvariants re-derives the length-non-negative and
// symmetric-occupancy invariants from the engine's public surface only.
func checkReservationInvariants(t *testing.T, eng *reservation.Engine, live []reservation.SnakeID) {
	t.Helper()

	states := make(map[reservation.SnakeID]reservation.SnakeState, len(live))
	for _, id := range live {
		state, err := eng.SnakeState(id)
		require.NoError(t, err)
		require.GreaterOrEqual(t, state.Length, 0)
		require.GreaterOrEqual(t, state.HeadOffset, 0)
		require.GreaterOrEqual(t, state.TailOffset, 0)
		require.NotEmpty(t, state.Vertices)
		states[id] = state
	}

	// Query must be symmetric: if a reports b as a co-occupant, b must
	// report a back.
	for _, id := range live {
		others, err := eng.Query(id)
		require.NoError(t, err)
		for _, other := range others {
			back, err := eng.Query(other)
			require.NoError(t, err)
			require.Contains(t, back, id, "Query must be symmetric between %s and %s", id, other)
		}
	}
}
