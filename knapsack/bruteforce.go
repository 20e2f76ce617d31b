package knapsack

import "fmt"

// MaxBruteForceItems caps BruteForce at 2^20 subsets.
const MaxBruteForceItems = 20

// BruteForce enumerates all 2^N subsets and returns the best value with its
// selection. It is a reference for cross-checking Solve on small inputs.
// On ties the subset with the smallest bitmask wins.
func BruteForce(values []float64, weights []int64, capacity int64) (float64, []int, error) {
	if err := validate(values, weights, capacity); err != nil {
		return 0, nil, err
	}
	n := len(values)
	if n > MaxBruteForceItems {
		return 0, nil, fmt.Errorf("%w: n=%d max=%d", ErrTooManyItems, n, MaxBruteForceItems)
	}

	var (
		best     float64
		bestMask uint32
	)
	for mask := uint32(0); mask < 1<<n; mask++ {
		var v float64
		rem, fits := capacity, true
		for k := 0; k < n && fits; k++ {
			if mask&(1<<k) == 0 {
				continue
			}
			v += values[k]
			rem -= weights[k]
			fits = rem >= 0
		}
		if fits && v > best {
			best, bestMask = v, mask
		}
	}

	selection := make([]int, n)
	for k := 0; k < n; k++ {
		if bestMask&(1<<k) != 0 {
			selection[k] = 1
		}
	}

	return best, selection, nil
}
