package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, integer Weight, and a
// Directed flag copied from the Graph default at insertion time.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	seq uint64 // insertion order, used for deterministic sorting
}

// Other returns the endpoint opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and nextEdgeID.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// adjacency[v] lists every edge incident to v, in insertion order.
	// Undirected edges appear under both endpoints.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
