package dijkstra

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/dpkit/core"
)

// SecondShortest returns the cheapest route from Options.Source to target that
// uses at least one edge not on the shortest path (as found by ShortestPath).
// Its Distance may equal the shortest distance when several optimal routes
// exist; the route may revisit vertices.
//
// Algorithm Outline:
//  1. Run Dijkstra from Source and mark the edges of the shortest route to target.
//  2. Build a two-layer graph. Layer P mirrors g. Layer D is a second copy
//     of every vertex; each traversal u→v of an edge e gives
//     P(u)→P(v) and D(u)→D(v), and, only when e is unmarked, D(u)→P(v).
//  3. Run Dijkstra from D(Source) to P(target). Every route must cross from
//     D to P, and the only crossings are unmarked edges.
//  4. Project the layered route back onto g.
//
// Undirected edges are marked by ID, so both directions of a marked edge count
// as shortest-path edges.
//
// Errors: everything ShortestPath returns, plus ErrNoPath when no alternative
// route exists.
//
// Complexity:
//
//   - Time:  O((V + E) log V), two searches over graphs of size ≤ 2V, 3E.
//   - Space: O(V + E)
func SecondShortest(g *core.Graph, target string, opts ...Option) (Path, error) {
	first, err := ShortestPath(g, target, opts...)
	if err != nil {
		return Path{}, err
	}
	cfg := buildOptions(opts)

	marked := make(map[string]bool, len(first.Edges))
	for _, id := range first.Edges {
		marked[id] = true
	}

	lg, err := buildLayers(g, marked)
	if err != nil {
		return Path{}, err
	}
	if cfg.Logger != nil {
		cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "dijkstra: layered graph built",
			slog.Int("vertices", lg.g.VertexCount()),
			slog.Int("edges", lg.g.EdgeCount()),
			slog.Int("marked", len(marked)),
		)
	}

	layered := cfg
	layered.Source = lg.detour[cfg.Source]
	layered.ReturnPath = true
	r, err := run(lg.g, layered)
	if err != nil {
		return Path{}, err
	}
	end := lg.primary[target]
	if r.dist[end] == math.MaxInt64 {
		return Path{}, fmt.Errorf("%w: no alternative route %s→%s", ErrNoPath, cfg.Source, target)
	}

	lp := r.path(end)
	out := Path{
		Distance: lp.Distance,
		Vertices: make([]string, len(lp.Vertices)),
		Edges:    make([]string, len(lp.Edges)),
	}
	for i, v := range lp.Vertices {
		out.Vertices[i] = lg.base[v]
	}
	for i, id := range lp.Edges {
		out.Edges[i] = lg.edge[id]
	}

	return out, nil
}

// layers is the two-layer graph plus the maps back to g.
type layers struct {
	g       *core.Graph
	primary map[string]string // g vertex → layer P vertex
	detour  map[string]string // g vertex → layer D vertex
	base    map[string]string // layered vertex → g vertex
	edge    map[string]string // layered edge → g edge
}

func buildLayers(g *core.Graph, marked map[string]bool) (*layers, error) {
	vertices := g.Vertices()
	l := &layers{
		g:       core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()),
		primary: make(map[string]string, len(vertices)),
		detour:  make(map[string]string, len(vertices)),
		base:    make(map[string]string, 2*len(vertices)),
		edge:    make(map[string]string, 3*g.EdgeCount()),
	}
	for i, v := range vertices {
		p, d := "p"+strconv.Itoa(i), "d"+strconv.Itoa(i)
		l.primary[v], l.detour[v] = p, d
		l.base[p], l.base[d] = v, v
		if err := l.g.AddVertex(p); err != nil {
			return nil, err
		}
		if err := l.g.AddVertex(d); err != nil {
			return nil, err
		}
	}

	for _, u := range vertices {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.Other(u)
			if err = l.link(l.primary[u], l.primary[v], e); err != nil {
				return nil, err
			}
			if err = l.link(l.detour[u], l.detour[v], e); err != nil {
				return nil, err
			}
			if !marked[e.ID] {
				if err = l.link(l.detour[u], l.primary[v], e); err != nil {
					return nil, err
				}
			}
		}
	}

	return l, nil
}

func (l *layers) link(from, to string, e *core.Edge) error {
	id, err := l.g.AddEdge(from, to, e.Weight)
	if err != nil {
		return fmt.Errorf("dijkstra: layering edge %s: %w", e.ID, err)
	}
	l.edge[id] = e.ID

	return nil
}
