package knapsack

import (
	"context"
	"log/slog"
)

// Solve computes the 0/1 knapsack optimum for parallel values and weights
// under the given capacity.
//
// Algorithm Outline (FullTable):
//  1. Let N = len(values), W = capacity. Allocate (N+1)x(W+1) tables f and p.
//  2. For i = 1..N, j = 1..W:
//     f[i][j] = f[i-1][j]
//     if w[i-1] ≤ j: f[i][j] = max(f[i][j], f[i-1][j-w[i-1]] + v[i-1])
//     p[i][j] = f[i][j] != f[i-1][j]   (ties favour leaving the item out)
//  3. value = f[N][W].
//  4. If ReturnSelection, walk back from (N, W) while i > 0 and j > 0:
//     p[i][j] set   → select item i, j -= w[i-1], i--
//     p[i][j] clear → i--
//
// The tables are sized by min(capacity, Σweights): capacity beyond the total
// weight of all items cannot change the optimum or the selection.
//
// Errors:
//   - ErrLengthMismatch, ErrNegativeCapacity, ErrNonPositiveWeight, ErrInvalidValue
//     (all wrap ErrInvalidInput).
//   - ErrTableTooLarge       — the clamped grid exceeds MaxCells.
//   - ErrSelectionNeedsTable — ReturnSelection=true with RollingRow.
//
// A nil opts means DefaultOptions().
//
// Complexity: Time O(N·W), Memory O(N·W) (FullTable) or O(W) (RollingRow).
func Solve(values []float64, weights []int64, capacity int64, opts *Options) (Result, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.ReturnSelection && cfg.MemoryMode != FullTable {
		return Result{}, ErrSelectionNeedsTable
	}
	if err := validate(values, weights, capacity); err != nil {
		return Result{}, err
	}

	// No subset weighs more than Σweights, so wider columns never change the answer.
	work := clampCapacity(weights, capacity)
	rows := len(values) + 1
	if cfg.MemoryMode == RollingRow {
		rows = 1
	}
	if err := checkTableSize(rows, work); err != nil {
		return Result{}, err
	}

	s := &solver{
		values:   values,
		weights:  weights,
		capacity: int(work),
		log:      cfg.Logger,
	}
	if work != capacity {
		s.debug("knapsack: capacity clamped to total weight",
			slog.Int64("capacity", capacity),
			slog.Int64("working", work),
		)
	}

	if cfg.MemoryMode == RollingRow {
		return Result{Value: s.rolling()}, nil
	}

	s.fill()
	res := Result{Value: s.f.at(len(values), s.capacity)}
	if cfg.ReturnSelection {
		res.Selection, res.Weight = s.traceback()
	}

	return res, nil
}

// SolveItems is Solve over a slice of Item.
func SolveItems(items []Item, capacity int64, opts *Options) (Result, error) {
	values := make([]float64, len(items))
	weights := make([]int64, len(items))
	for i, it := range items {
		values[i] = it.Value
		weights[i] = it.Weight
	}

	return Solve(values, weights, capacity, opts)
}

// solver holds the state of one Solve call; nothing outlives it.
type solver struct {
	values   []float64
	weights  []int64
	capacity int
	log      *slog.Logger

	f *valueTable
	p *decisionTable
}

// fill populates f and p row by row.
func (s *solver) fill() {
	n, cols := len(s.values), s.capacity+1
	s.f = newValueTable(n+1, cols)
	s.p = newDecisionTable(cols)
	s.debug("knapsack: tables allocated", slog.Int("rows", n+1), slog.Int("cols", cols))

	for i := 1; i <= n; i++ {
		prev, curr := s.f.row(i-1), s.f.row(i)
		v, w := s.values[i-1], s.weights[i-1]
		for j := 1; j < cols; j++ {
			best := prev[j]
			if w <= int64(j) {
				if cand := prev[j-int(w)] + v; cand > best {
					best = cand
				}
			}
			curr[j] = best
			if best != prev[j] {
				s.p.mark(i, j)
			}
		}
	}
}

// traceback reconstructs the selection from p, stepping to row i-1 after
// every decision so each item is taken at most once.
func (s *solver) traceback() ([]int, int64) {
	selection := make([]int, len(s.values))
	var total int64
	i, j := len(s.values), s.capacity
	for i != 0 && j != 0 {
		if s.p.used(i, j) {
			selection[i-1]++
			total += s.weights[i-1]
			j -= int(s.weights[i-1])
		}
		i--
	}
	s.debug("knapsack: traceback done",
		slog.Uint64("decisions", s.p.count()),
		slog.Int64("weight", total),
	)

	return selection, total
}

// rolling computes only the optimal value with one row, iterating j downwards
// so each item is considered once per cutoff.
func (s *solver) rolling() float64 {
	row := make([]float64, s.capacity+1)
	s.debug("knapsack: rolling row allocated", slog.Int("cols", len(row)))
	for i, v := range s.values {
		w := int(s.weights[i])
		for j := s.capacity; j >= w; j-- {
			if cand := row[j-w] + v; cand > row[j] {
				row[j] = cand
			}
		}
	}

	return row[s.capacity]
}

func (s *solver) debug(msg string, attrs ...slog.Attr) {
	if s.log == nil {
		return
	}
	s.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
