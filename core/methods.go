package core

import (
	"sort"
	"strconv"
)

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new edge from→to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Assign the next ID, store the edge, link adjacency (both ends if undirected).
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		for _, e := range g.adjacency[from] {
			if e.From == from && e.To == to || !e.Directed && e.From == to && e.To == from {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// Neighbors returns the edges leaving id: outgoing directed edges plus every
// undirected edge incident to id, in insertion order.
// Use Edge.Other(id) to get the far endpoint.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
