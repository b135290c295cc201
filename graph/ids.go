package graph

import (
	"strconv"
	"sync/atomic"
)

// VertexID uniquely identifies a Vertex within a single Graph. Identifiers
// are monotonic and never reused, prefixed "v" for debuggability.
type VertexID string

// EdgeID uniquely identifies an Edge within a single Graph. Monotonic,
// never reused, prefixed "e".
type EdgeID string

const (
	vertexIDPrefix = 'v'
	edgeIDPrefix   = 'e'
)

// nextVertexID returns a new unique textual vertex id, allocation-light in
// the style of the teacher library's core/methods_edges.go nextEdgeID:
// an atomic counter plus a []byte append, no fmt.
func (g *Graph) nextVertexID() VertexID {
	n := atomic.AddUint64(&g.vertexSeq, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, vertexIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return VertexID(buf)
}

func (g *Graph) nextEdgeID() EdgeID {
	n := atomic.AddUint64(&g.edgeSeq, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return EdgeID(buf)
}
