package session

import (
	"sync"

	"github.com/snakegraph/snakegraph/graph"
	"github.com/snakegraph/snakegraph/reservation"
)

// Position names where a snake should be planted by AddSnakeAt: either an
// existing vertex, or an integer offset along an edge (materialized into a
// real vertex via graph.Split if it doesn't already land exactly on one).
// Mirrors graph.Endpoint's two-shape contract, kept as its own type here
// because graph.Endpoint's fields are private to the search algorithm.
type Position struct {
	vertex  graph.VertexID
	edge    graph.EdgeID
	at      int
	hasEdge bool
}

// AtVertex builds a Position naming an existing vertex directly.
func AtVertex(v graph.VertexID) Position { return Position{vertex: v} }

// OnEdge builds a Position naming an integer offset along edge e, measured
// from e's Low end (negative counts back from High, matching Split's `at`
// convention).
func OnEdge(e graph.EdgeID, at int) Position {
	return Position{edge: e, at: at, hasEdge: true}
}

// registeredSnake is the façade's bookkeeping for one snake under its
// per-tick stepper: which way it is currently growing, and the oracle the
// caller supplied when it was registered.
type registeredSnake struct {
	dir    reservation.End
	oracle reservation.Oracle
}

// EventKind names a notification channel a façade consumer can subscribe
// to.
type EventKind int8

const (
	// EventUpdate fires after any successful structural graph mutation.
	EventUpdate EventKind = iota
	// EventUpdateSnakes fires after Step changes one or more snake
	// positions.
	EventUpdateSnakes
)

// Subscriber is a fire-and-forget notification callback: it carries no
// payload, and subscribers are expected to re-read whatever state they
// need. Kept as the plainest possible thing that works under the
// single-threaded, cooperative execution model: a slice of plain
// funcs, invoked synchronously and in subscription order.
type Subscriber func()

// Session holds one graph.Graph and one reservation.Engine, forwards
// structural edits, drives a per-tick snake stepper, and emits change
// notifications to subscribers.
type Session struct {
	mu sync.Mutex

	g   *graph.Graph
	eng *reservation.Engine

	order  []reservation.SnakeID
	snakes map[reservation.SnakeID]*registeredSnake

	subscribers map[EventKind][]Subscriber

	corrupted bool
}

// SessionOption configures a Session at construction time.
type SessionOption func(*Session)

// WithGraphOptions forwards GraphOption values to the underlying
// graph.NewGraph call.
func WithGraphOptions(opts ...graph.GraphOption) SessionOption {
	return func(s *Session) {
		s.g = graph.NewGraph(opts...)
	}
}

// NewSession creates a Session around a fresh Graph and Engine.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		g:           graph.NewGraph(),
		snakes:      make(map[reservation.SnakeID]*registeredSnake),
		subscribers: make(map[EventKind][]Subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.eng = reservation.NewEngine(s.g)

	return s
}

// Graph returns the session's underlying graph, for read-only queries
// (EdgeDetails, PairsAt, AllVertices, Search, ...) that have no structural
// side effect and so need no corruption latch or notification.
func (s *Session) Graph() *graph.Graph { return s.g }

// Engine returns the session's underlying reservation engine, for
// read-only queries (SnakeState, Query) with the same rationale as Graph.
func (s *Session) Engine() *reservation.Engine { return s.eng }
