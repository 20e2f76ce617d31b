// Package core defines the Graph and Edge types used by the path solvers,
// with thread-safe primitives for building and querying weighted graphs.
//
// Locking follows a fixed order: muVert (vertices) before muEdgeAdj
// (edges and adjacency). Reads take read locks only.
//
// Determinism:
//
//	Vertices() returns IDs sorted lexicographically.
//	Edges() and Neighbors() return edges in insertion order (ascending
//	edge sequence), so algorithms built on top break ties reproducibly.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
