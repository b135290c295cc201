// Package session is the thin façade holding one graph.Graph and one
// reservation.Engine, forwarding structural edits, driving a per-tick
// snake stepper, and emitting change notifications to subscribers.
//
// The façade is the only component aware of wall-clock ticks; the graph
// and reservation engine underneath are purely reactive. It also owns the
// single point of failure for a corrupted graph: any operation that
// surfaces an internal-invariant error permanently latches the session,
// refusing further calls rather than risk operating on inconsistent
// state.
package session
