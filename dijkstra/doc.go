// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs and a second-shortest route search built on top of it.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap,
// relaxing edges and updating distances accordingly.
//
// SecondShortest finds the cheapest route to a target that differs from the
// shortest one in at least one edge. It marks the shortest route's edges,
// builds a two-layer copy of the graph where the only way from the detour
// layer to the primary layer is an unmarked edge, and runs Dijkstra again.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per search
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We scan all edges up front to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: duplicates are pushed and stale entries skipped.
//
// Example usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "D", 1)
//	g.AddEdge("A", "C", 2)
//	g.AddEdge("C", "D", 2)
//
//	p, err := dijkstra.SecondShortest(g, "D", dijkstra.Source("A"))
//	// p.Distance == 4, p.Vertices == [A C D]
package dijkstra
