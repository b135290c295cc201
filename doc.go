// Package snakegraph is a dynamic, non-Euclidean transportation graph with
// a snake/train reservation engine built on top of it.
//
// Under the hood, everything is organized under four subpackages:
//
//	graph/       — vertices, edges, and junction pairs; connect, split, join,
//	               merge, and pair-authorized path search
//	reservation/ — half-open interval reservations per edge and the
//	               grow/shrink/move state machine that drives a snake along
//	               the graph
//	session/     — a façade owning one graph and one reservation engine,
//	               a per-tick snake stepper, and change notifications
//	topology/    — deterministic constructors for common rail layouts
//	               (Line, Loop, Grid, Star, Wheel)
//
// There is no spatial layer: every position is an integer offset along an
// edge, and the network's topology is whatever connect/split/join describe
// — two vertices can be "close" along one path and far along another, and a
// junction only permits the turns it has been explicitly told to.
package snakegraph
