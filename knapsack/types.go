package knapsack

import (
	"fmt"
	"log/slog"
	"strings"
)

// MemoryMode controls how Solve stores its DP tables.
//
//   - FullTable  — keep the entire (N+1)x(W+1) value and decision tables.
//     Allows the optimal value plus traceback of the selection.
//     Memory: O(N·W).
//
//   - RollingRow — keep a single row of W+1 values, updated in place from
//     right to left. Memory: O(W), but the selection cannot be recovered.
type MemoryMode int

const (
	// FullTable mode: store all rows, support selection recovery, uses O(N·W) memory.
	FullTable MemoryMode = iota

	// RollingRow mode: one reusable row, value only, uses O(W) memory.
	RollingRow
)

// String returns a human-readable name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "FullTable"
	case RollingRow:
		return "RollingRow"
	default:
		return "MemoryMode(?)"
	}
}

// Item is one candidate for the knapsack.
type Item struct {
	Value  float64 // non-negative, finite
	Weight int64   // strictly positive
}

// Options configures Solve.
//
// Fields:
//   - MemoryMode      — FullTable or RollingRow storage.
//   - ReturnSelection — if true, Solve runs the traceback and fills
//     Result.Selection. Requires MemoryMode=FullTable.
//   - Logger          — optional structured logger; nil disables logging.
//
// Example:
//
//	opts := knapsack.DefaultOptions()
//	opts.MemoryMode = knapsack.RollingRow
//	opts.ReturnSelection = false
//	res, err := knapsack.Solve(values, weights, capacity, &opts)
type Options struct {
	MemoryMode      MemoryMode
	ReturnSelection bool
	Logger          *slog.Logger
}

// DefaultOptions returns FullTable storage with selection recovery enabled
// and logging disabled.
func DefaultOptions() Options {
	return Options{
		MemoryMode:      FullTable,
		ReturnSelection: true,
	}
}

// Result is the outcome of a knapsack solve.
type Result struct {
	// Value is the maximum total value achievable within capacity.
	Value float64

	// Selection holds one count per input item (0 or 1).
	// Nil when ReturnSelection is false.
	Selection []int

	// Weight is the total weight of the selected items.
	// Zero when ReturnSelection is false.
	Weight int64
}

// Selected returns the indices of items with a non-zero count, in input order.
func (r Result) Selected() []int {
	idx := make([]int, 0, len(r.Selection))
	for i, c := range r.Selection {
		if c > 0 {
			idx = append(idx, i)
		}
	}

	return idx
}

// SelectionString renders the counts as "x1=1, x2=0, ..." with 1-based item numbers.
func (r Result) SelectionString() string {
	parts := make([]string, len(r.Selection))
	for i, c := range r.Selection {
		parts[i] = fmt.Sprintf("x%d=%d", i+1, c)
	}

	return strings.Join(parts, ", ")
}
