package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/dpkit/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; "" for the
//     source and unreachable vertices.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. MaxDistance ≥ 0 (ErrBadMaxDistance), InfEdgeThreshold > 0 (ErrBadInfThreshold).
//  6. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := buildOptions(opts)
	r, err := run(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight route from Options.Source to target.
// Returns ErrNoPath if target is unreachable within the configured limits.
func ShortestPath(g *core.Graph, target string, opts ...Option) (Path, error) {
	cfg := buildOptions(opts)
	if err := checkTarget(g, cfg, target); err != nil {
		return Path{}, err
	}
	cfg.ReturnPath = true
	r, err := run(g, cfg)
	if err != nil {
		return Path{}, err
	}
	if r.dist[target] == math.MaxInt64 {
		return Path{}, fmt.Errorf("%w: %s→%s", ErrNoPath, cfg.Source, target)
	}

	return r.path(target), nil
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// checkTarget validates target after the source-side checks have a chance to fire first.
func checkTarget(g *core.Graph, cfg Options, target string) error {
	if err := validate(g, cfg); err != nil {
		return err
	}
	if target == "" {
		return ErrEmptyTarget
	}
	if !g.HasVertex(target) {
		return fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	return nil
}

func validate(g *core.Graph, cfg Options) error {
	if cfg.Source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// run validates inputs and executes one search.
func run(g *core.Graph, cfg Options) (*runner, error) {
	if err := validate(g, cfg); err != nil {
		return nil, err
	}
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
		r.prevEdge = make(map[string]*core.Edge, V)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if cfg.Logger != nil {
		cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "dijkstra: search done",
			slog.String("source", cfg.Source),
			slog.Int("vertices", V),
			slog.Int("settled", r.settled()),
		)
	}

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	options  Options
	dist     map[string]int64      // vertex ID → best known distance from Source
	prev     map[string]string     // vertex ID → predecessor vertex (ReturnPath only)
	prevEdge map[string]*core.Edge // vertex ID → edge used to reach it (ReturnPath only)
	visited  map[string]bool       // finalized vertices
	pq       nodePQ
}

// init sets every distance to +∞ and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.visited[v] = false
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest vertex until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		if r.visited[u] {
			continue // stale entry
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor reachable from u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > math.MaxInt64-r.dist[u] {
			continue // would overflow; farther than any representable distance
		}
		v := e.Other(u)
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
			r.prevEdge[v] = e
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// path walks prevEdge back from target to Source. Requires ReturnPath.
func (r *runner) path(target string) Path {
	p := Path{Distance: r.dist[target]}
	for v := target; ; {
		p.Vertices = append(p.Vertices, v)
		e, ok := r.prevEdge[v]
		if !ok {
			break
		}
		p.Edges = append(p.Edges, e.ID)
		v = r.prev[v]
	}
	reverse(p.Vertices)
	reverse(p.Edges)

	return p
}

func (r *runner) settled() int {
	n := 0
	for _, ok := range r.visited {
		if ok {
			n++
		}
	}

	return n
}

func reverse(s []string) {
	for l, h := 0, len(s)-1; l < h; l, h = l+1, h-1 {
		s[l], s[h] = s[h], s[l]
	}
}

// nodeItem represents a vertex and its tentative distance in the priority queue.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, used with lazy decrease-key:
// outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
