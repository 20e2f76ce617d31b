// Package knapsack solves the 0/1 knapsack problem by dynamic programming.
//
// 🚀 What is the 0/1 knapsack?
//
//	Given N items, each with a value and a positive integer weight, and a
//	capacity W, pick a subset of items (each at most once) whose total
//	weight does not exceed W and whose total value is maximal.
//	Typical uses:
//	  • Cargo and container loading
//	  • Budget allocation across projects
//	  • Picking features under a size or latency budget
//
// ✨ Key features:
//   - full-table mode: exact O(N·W) time & memory, returns the selection
//   - rolling mode: O(W) memory when only the optimal value is needed
//   - decision table stored as a compressed roaring bitmap
//   - exhaustive BruteForce reference solver for cross-checking small inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dpkit/knapsack"
//
//	res, err := knapsack.Solve(
//		[]float64{3, 8, 12}, // values
//		[]int64{2, 3, 3},    // weights
//		8,                   // capacity
//		nil,                 // DefaultOptions()
//	)
//	// res.Value == 23, res.Selection == [1 1 1]
//
// Traceback:
//
//	Starting at cell (N, W), a set decision flag p[i][j] selects item i,
//	reduces j by its weight and moves to row i-1. A clear flag moves to
//	row i-1 with j unchanged. Every row is visited at most once, so each
//	item is counted at most once.
//
// Performance:
//
//   - Time:   O(N·W)
//   - Memory: O(N·W) (FullTable) or O(W) (RollingRow)
package knapsack
