package knapsack

import (
	"fmt"
	"math"
)

// MaxCells bounds the DP grid: decision cells are keyed by uint32 in the bitmap.
const MaxCells = int64(math.MaxUint32) + 1

// validate checks the input contract shared by Solve and BruteForce.
// Order: lengths, capacity, per-item weight, per-item value.
func validate(values []float64, weights []int64, capacity int64) error {
	if len(values) != len(weights) {
		return fmt.Errorf("%w: len(values)=%d len(weights)=%d", ErrLengthMismatch, len(values), len(weights))
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}
	for i, w := range weights {
		if w <= 0 {
			return fmt.Errorf("%w: item %d weight=%d", ErrNonPositiveWeight, i, w)
		}
	}
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: item %d value=%v", ErrInvalidValue, i, v)
		}
	}

	return nil
}

// clampCapacity returns min(capacity, Σweights) without overflowing the sum.
func clampCapacity(weights []int64, capacity int64) int64 {
	var total int64
	for _, w := range weights {
		if w >= capacity-total {
			return capacity
		}
		total += w
	}

	return total
}

// checkTableSize rejects a rows×(capacity+1) grid larger than MaxCells.
func checkTableSize(rows int, capacity int64) error {
	r := int64(rows)
	if capacity >= MaxCells || capacity+1 > MaxCells/r {
		return fmt.Errorf("%w: rows=%d capacity=%d", ErrTableTooLarge, r, capacity)
	}

	return nil
}
