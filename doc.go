// Package dpkit collects dynamic-programming solvers written in plain,
// well-documented Go.
//
// 🚀 What is in dpkit?
//
//	knapsack/ — 0/1 knapsack: value table + decision table + traceback,
//	            full-table or rolling-row memory modes, brute-force reference.
//	core/     — thread-safe weighted graph (vertices, directed/undirected edges).
//	dijkstra/ — shortest paths and the second-shortest route via a
//	            two-layer graph.
//
// ✨ Why choose dpkit?
//
//   - Beginner-friendly – minimal API, clear naming
//   - Sentinel errors – wrapped with context, matched via errors.Is
//   - Options structs with DefaultOptions(), no hidden globals
//   - Optional structured logging through log/slog
//
// Quick example:
//
//	res, err := knapsack.Solve([]float64{3, 8, 12}, []int64{2, 3, 3}, 8, nil)
//	// res.Value == 23
//
// See examples/knapsack_lab and examples/second_path for runnable programs.
package dpkit
