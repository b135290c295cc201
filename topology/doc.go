// Package topology provides deterministic constructors for common rail
// layouts, expressed purely in terms of graph.Graph's own primitives
// (AddVertex, Connect, Join). They are conveniences layered on top of the
// graph core, adapted from the teacher library's builder package
// (impl_path.go, impl_cycle.go, impl_grid.go, impl_star.go,
// impl_wheel.go): same validate-then-construct shape, same deterministic
// vertex-ID and edge-emission order, same errors.New sentinel plus
// wrapf-style error wrapping.
//
// Unlike builder's Constructor closures — which carry a weight/direction
// policy resolved from a builderConfig — these constructors have no
// weights or directedness to thread through: graph.Graph edges carry an
// integer length instead of a weight, and junction authorization is
// carried by pairs rather than edge direction. A topology constructor's
// only per-segment choice is therefore length, which every function here
// takes as a plain parameter.
//
// Line, Loop, and Grid join every interior vertex they create with the
// straight-through pair connecting its two segments, mirroring how a
// split's via vertex defaults to through-routable.
// Star and Wheel deliberately leave their hub unjoined across spokes, so a
// snake arriving at the hub along a spoke has no authorized continuation
// and stops there; only a snake that starts at the hub as a single point
// is offered a choice among the spokes.
package topology
