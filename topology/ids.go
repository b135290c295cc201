package topology

import (
	"strconv"

	"github.com/snakegraph/snakegraph/graph"
)

// indexID produces a deterministic decimal vertex id for position i within
// a prefix-named layout, mirroring builder's DefaultIDFn.
func indexID(prefix string, i int) graph.VertexID {
	return graph.VertexID(prefix + strconv.Itoa(i))
}

// gridID produces the fixed "r,c" coordinate scheme used by Grid,
// mirroring builder/impl_grid.go's gridIDFmt.
func gridID(r, c int) graph.VertexID {
	return graph.VertexID(strconv.Itoa(r) + "," + strconv.Itoa(c))
}

// centerVertexID is the fixed hub id used by Star and Wheel, mirroring
// builder's centerVertexID.
const centerVertexID graph.VertexID = "Center"
