package session

import (
	"errors"

	"github.com/snakegraph/snakegraph/graph"
	"github.com/snakegraph/snakegraph/reservation"
)

// File: facade.go
// Role: structural-edit forwarding, the per-tick snake stepper, and the
// corruption latch.
//
// Every method except Subscribe first checks the latch, then performs its
// work, then (for
// mutations) latches on an InternalInvariant and otherwise publishes a
// notification. No method ever leaves the latch unset after observing an
// InternalInvariant — that error kind is fatal to the whole session.

// latch marks the session permanently corrupted if err wraps either
// package's ErrInternalInvariant, then returns err unchanged.
func (s *Session) latch(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, graph.ErrInternalInvariant) || errors.Is(err, reservation.ErrInternalInvariant) {
		s.corrupted = true
	}

	return err
}

func (s *Session) checkAlive() error {
	if s.corrupted {
		return ErrSessionCorrupted
	}

	return nil
}

// AddVertex forwards to the graph, publishing EventUpdate on success.
func (s *Session) AddVertex(id graph.VertexID) (graph.VertexID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return "", err
	}
	v, err := s.g.AddVertex(id)
	if err != nil {
		return "", s.latch(err)
	}
	s.publish(EventUpdate)

	return v, nil
}

// Connect forwards to the graph, publishing EventUpdate on success.
func (s *Session) Connect(a, b graph.VertexID, length int) (graph.EdgeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return "", err
	}
	e, err := s.g.Connect(a, b, length)
	if err != nil {
		return "", s.latch(err)
	}
	s.publish(EventUpdate)

	return e, nil
}

// Split forwards to the graph, publishing EventUpdate on success.
func (s *Session) Split(a, via, b graph.VertexID, at int) (graph.VertexID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return "", err
	}
	v, err := s.g.Split(a, via, b, at)
	if err != nil {
		return "", s.latch(err)
	}
	s.publish(EventUpdate)

	return v, nil
}

// Join forwards to the graph, publishing EventUpdate on success.
func (s *Session) Join(a, via, b graph.VertexID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return false, err
	}
	added, err := s.g.Join(a, via, b)
	if err != nil {
		return false, s.latch(err)
	}
	if added {
		s.publish(EventUpdate)
	}

	return added, nil
}

// Merge forwards to the graph. The reservation engine keeps the vertex ids
// its snakes cover, so a merged-away vertex is safe to drop only once
// nothing still occupies it. Merge does not check snake occupancy: it
// merges regardless of whether a snake touches either side.
func (s *Session) Merge(a, b graph.VertexID) (graph.VertexID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return "", err
	}
	v, err := s.g.Merge(a, b)
	if err != nil {
		return "", s.latch(err)
	}
	s.publish(EventUpdate)

	return v, nil
}

// resolvePosition turns a Position into a concrete vertex, splitting the
// graph to materialize a mid-edge position if needed. Must be called with
// s.mu held.
func (s *Session) resolvePosition(pos Position) (graph.VertexID, bool, error) {
	if !pos.hasEdge {
		if !s.g.HasVertex(pos.vertex) {
			return "", false, ErrInvalidPosition
		}

		return pos.vertex, false, nil
	}

	details, err := s.g.EdgeDetails(pos.edge)
	if err != nil {
		return "", false, ErrInvalidPosition
	}

	at := pos.at
	if at < 0 {
		at = details.Length + at
	}
	if at < 0 || at > details.Length {
		return "", false, ErrInvalidPosition
	}
	if at == 0 {
		return details.LowVertex, false, nil
	}
	if at == details.Length {
		return details.HighVertex, false, nil
	}

	via, err := s.g.Split(details.LowVertex, graph.NewVertexSentinel, details.HighVertex, at)
	if err != nil {
		return "", false, s.latch(err)
	}

	return via, true, nil
}

// AddSnakeAt creates a snake at pos — splitting the graph to materialize a
// mid-edge position first, if needed — and registers it under the façade's
// per-tick stepper with the given initial growth direction and oracle.
func (s *Session) AddSnakeAt(pos Position, dir reservation.End, oracle reservation.Oracle) (reservation.SnakeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return "", err
	}

	v, split, err := s.resolvePosition(pos)
	if err != nil {
		return "", err
	}
	if split {
		s.publish(EventUpdate)
	}

	id, err := s.eng.AddSnake(v)
	if err != nil {
		return "", s.latch(err)
	}

	s.snakes[id] = &registeredSnake{dir: dir, oracle: oracle}
	s.order = append(s.order, id)

	return id, nil
}

// RemoveSnake releases s's reservations and drops it from the façade's
// per-tick stepper.
func (s *Session) RemoveSnake(id reservation.SnakeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return err
	}
	if _, ok := s.snakes[id]; !ok {
		return ErrUnknownSnake
	}
	if err := s.eng.RemoveSnake(id); err != nil {
		return s.latch(err)
	}

	delete(s.snakes, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Step advances every registered snake by delta units at its current
// direction. A snake that cannot fully consume delta —
// because its oracle refused, because it ran into a fully reserved
// interval, or because after growing it shares any vertex with another
// snake (per Engine.Query) — has its direction bit flipped and its
// partial growth undone by shrinking the same end back by the amount
// actually grown, preserving length (bounce, don't stall). A single
// EventUpdateSnakes notification fires once, after every registered snake
// has been advanced, if at least one snake grew by a nonzero amount (even
// if that growth was then undone by a bounce); a bounce with zero growth
// fires nothing.
func (s *Session) Step(delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return err
	}

	changed := false
	for _, id := range s.order {
		reg := s.snakes[id]
		grown, err := s.eng.Grow(id, reg.dir, delta, reg.oracle)
		if err != nil {
			return s.latch(err)
		}

		blocked := grown < delta
		if !blocked {
			others, err := s.eng.Query(id)
			if err != nil {
				return s.latch(err)
			}
			blocked = len(others) > 0
		}

		if grown > 0 {
			changed = true
		}
		if blocked {
			if grown > 0 {
				if _, err := s.eng.Shrink(id, reg.dir, grown); err != nil {
					return s.latch(err)
				}
			}
			reg.dir = -reg.dir
		}
	}

	if changed {
		s.publish(EventUpdateSnakes)
	}

	return nil
}

// Subscribe registers fn to be called, with no arguments, every time kind
// fires. Returns an unsubscribe func.
func (s *Session) Subscribe(kind EventKind, fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers[kind] = append(s.subscribers[kind], fn)
	idx := len(s.subscribers[kind]) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subscribers[kind]
		if idx < len(list) {
			list[idx] = nil
		}
	}
}

// publish invokes every live subscriber of kind, in subscription order.
// Must be called with s.mu held (subscribers run synchronously, matching
// the single-threaded cooperative model).
func (s *Session) publish(kind EventKind) {
	for _, fn := range s.subscribers[kind] {
		if fn != nil {
			fn()
		}
	}
}
