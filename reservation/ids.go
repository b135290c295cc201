package reservation

import (
	"strconv"
	"sync/atomic"
)

// SnakeID uniquely identifies a snake within a single Engine. Monotonic,
// never reused, prefixed "s" for debuggability — mirroring the graph
// package's VertexID/EdgeID convention.
type SnakeID string

const snakeIDPrefix = 's'

func (e *Engine) nextSnakeID() SnakeID {
	n := atomic.AddUint64(&e.snakeSeq, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, snakeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return SnakeID(buf)
}
