// Package reservation implements the per-edge interval reservation layer
// that lets snakes grow, shrink, and translate along a graph.Graph while
// respecting edge-interval occupancy and per-vertex exclusivity.
//
// An Engine never mutates the graph it is attached to; it only resolves
// graph identifiers on each call and maintains its own indexes keyed by
// them. A vertex merged away in the graph layer must have had its
// occupancy released first. This package does not check that ordering,
// and neither does the session façade's Merge, which forwards to the
// graph without consulting snake occupancy.
package reservation
