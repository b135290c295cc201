// Package graph implements the geometry-agnostic transportation graph core:
// vertices, edges, junction ("pair") tables, structural mutation (connect,
// split, join, merge), segment lookup, and the pair-aware breadth-first
// path search.
//
// All positions and lengths inside this package are integers. The spatial
// layer (2-D coordinates, rendering, pointer hit-testing) is a separate,
// out-of-scope concern; nothing here ever touches a float.
//
// Every edge has exactly two endpoints, Low and High, at positions 0 and
// Length. Splitting an edge never grows a single Edge's vertex count past
// two: split reuses the existing edge's ID for the half that keeps the
// edge's Low endpoint and creates a brand-new edge for the half that keeps
// its High endpoint (see construct.go), so "edges are never
// destroyed" (only ever repurposed or added to) holds for the lifetime of a
// Graph.
//
// Concurrency: each Graph guards its own state with a single sync.RWMutex.
// Unlike the teacher library's core.Graph (which splits vertex and
// edge/adjacency locking into two mutexes for read concurrency), every
// public Graph operation here touches vertices, edges, and pairs together
// (split and merge in particular), so a single lock avoids lock-ordering
// bugs at the cost of read/read parallelism this package doesn't need —
// callers are expected to serialize access per the package's single-
// threaded, cooperative model (see the session package).
package graph
