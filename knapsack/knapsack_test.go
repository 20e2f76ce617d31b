package knapsack_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dpkit/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSelection asserts that sel is a feasible 0/1 assignment worth want.
func checkSelection(t *testing.T, values []float64, weights []int64, capacity int64, res knapsack.Result) {
	t.Helper()
	require.Len(t, res.Selection, len(values), "one count per item")

	var sumV float64
	var sumW int64
	for k, c := range res.Selection {
		assert.Contains(t, []int{0, 1}, c, "item %d counted more than once", k)
		sumV += float64(c) * values[k]
		sumW += int64(c) * weights[k]
	}
	assert.LessOrEqual(t, sumW, capacity, "selection must fit")
	assert.Equal(t, sumW, res.Weight, "Result.Weight must match selection")
	assert.InDelta(t, res.Value, sumV, 1e-9, "selection must achieve the optimum")
}

// TestSolve_Validation verifies every contract error and its ErrInvalidInput parent.
func TestSolve_Validation(t *testing.T) {
	cases := []struct {
		name     string
		values   []float64
		weights  []int64
		capacity int64
		want     error
	}{
		{"length mismatch", []float64{1, 2}, []int64{1}, 5, knapsack.ErrLengthMismatch},
		{"zero weight", []float64{1}, []int64{0}, 5, knapsack.ErrNonPositiveWeight},
		{"negative weight", []float64{1, 1}, []int64{2, -3}, 5, knapsack.ErrNonPositiveWeight},
		{"negative capacity", []float64{1}, []int64{1}, -1, knapsack.ErrNegativeCapacity},
		{"negative value", []float64{-1}, []int64{1}, 5, knapsack.ErrInvalidValue},
		{"NaN value", []float64{math.NaN()}, []int64{1}, 5, knapsack.ErrInvalidValue},
		{"Inf value", []float64{math.Inf(1)}, []int64{1}, 5, knapsack.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := knapsack.Solve(tc.values, tc.weights, tc.capacity, nil)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, knapsack.ErrInvalidInput, "all contract errors are invalid input")
			assert.Zero(t, res, "no partial result on error")
		})
	}
}

// TestSolve_HugeCapacity verifies capacities far beyond the total weight are
// solved on a clamped grid in both memory modes.
func TestSolve_HugeCapacity(t *testing.T) {
	for _, w := range []int64{math.MaxInt64, 1 << 62, 1 << 40} {
		res, err := knapsack.Solve([]float64{5}, []int64{1}, w, nil)
		require.NoError(t, err, "FullTable capacity %d", w)
		assert.Equal(t, 5.0, res.Value)
		assert.Equal(t, []int{1}, res.Selection)
		assert.Equal(t, int64(1), res.Weight)

		opts := knapsack.DefaultOptions()
		opts.MemoryMode = knapsack.RollingRow
		opts.ReturnSelection = false
		res, err = knapsack.Solve([]float64{5}, []int64{1}, w, &opts)
		require.NoError(t, err, "RollingRow capacity %d", w)
		assert.Equal(t, 5.0, res.Value)
	}

	res, err := knapsack.Solve([]float64{3, 8, 12}, []int64{2, 3, 3}, math.MaxInt64, nil)
	require.NoError(t, err)
	assert.Equal(t, 23.0, res.Value)
	assert.Equal(t, []int{1, 1, 1}, res.Selection)
}

// TestSolve_TableTooLarge verifies grids that stay oversized after clamping are rejected in both modes.
func TestSolve_TableTooLarge(t *testing.T) {
	values := []float64{1, 2}
	weights := []int64{1 << 40, 1 << 40}

	_, err := knapsack.Solve(values, weights, 1<<41, nil)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
	assert.False(t, errors.Is(err, knapsack.ErrInvalidInput), "a resource limit, not malformed input")

	opts := knapsack.DefaultOptions()
	opts.MemoryMode = knapsack.RollingRow
	opts.ReturnSelection = false
	_, err = knapsack.Solve(values, weights, 1<<41, &opts)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
}

// TestResult_SelectionString checks the "x1=.., x2=.." rendering.
func TestResult_SelectionString(t *testing.T) {
	assert.Equal(t, "x1=1, x2=0, x3=1", knapsack.Result{Selection: []int{1, 0, 1}}.SelectionString())
	assert.Equal(t, "", knapsack.Result{}.SelectionString())
}

// TestSolve_SelectionNeedsTable ensures ReturnSelection=true with RollingRow errors.
func TestSolve_SelectionNeedsTable(t *testing.T) {
	opts := knapsack.DefaultOptions()
	opts.MemoryMode = knapsack.RollingRow

	_, err := knapsack.Solve([]float64{1}, []int64{1}, 1, &opts)
	assert.ErrorIs(t, err, knapsack.ErrSelectionNeedsTable)
	assert.False(t, errors.Is(err, knapsack.ErrInvalidInput), "option misuse is not an input error")
}

// TestSolve_LabScenario checks the fixed three-item instance against brute force.
func TestSolve_LabScenario(t *testing.T) {
	values := []float64{3, 8, 12}
	weights := []int64{2, 3, 3}

	want, _, err := knapsack.BruteForce(values, weights, 8)
	require.NoError(t, err)
	require.Equal(t, 23.0, want, "brute-force optimum for the lab instance")

	res, err := knapsack.Solve(values, weights, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, want, res.Value)
	assert.Equal(t, []int{1, 1, 1}, res.Selection)
	assert.Equal(t, int64(8), res.Weight)
	assert.Equal(t, []int{0, 1, 2}, res.Selected())
}

// TestSolve_SingleItem covers an exact fit and an item that is too heavy.
func TestSolve_SingleItem(t *testing.T) {
	res, err := knapsack.Solve([]float64{5}, []int64{4}, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Value, "exact fit")
	assert.Equal(t, []int{1}, res.Selection)

	res, err = knapsack.Solve([]float64{5}, []int64{10}, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value, "too heavy")
	assert.Equal(t, []int{0}, res.Selection)
	assert.Empty(t, res.Selected())
}

// TestSolve_ZeroCapacity verifies nothing is selected when W = 0.
func TestSolve_ZeroCapacity(t *testing.T) {
	res, err := knapsack.Solve([]float64{3, 8, 12}, []int64{2, 3, 3}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, []int{0, 0, 0}, res.Selection)
	assert.Zero(t, res.Weight)
}

// TestSolve_EmptyItems verifies the empty instance for several capacities.
func TestSolve_EmptyItems(t *testing.T) {
	for _, w := range []int64{0, 1, 17} {
		res, err := knapsack.Solve(nil, nil, w, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Value, "capacity %d", w)
		assert.Empty(t, res.Selection, "capacity %d", w)
	}
}

// TestSolve_TiesFavourExclusion checks that items adding no value stay unselected.
func TestSolve_TiesFavourExclusion(t *testing.T) {
	values := []float64{0, 4, 0, 4}
	weights := []int64{1, 2, 1, 2}

	res, err := knapsack.Solve(values, weights, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Value)
	// Item 4 only ties item 2 at cutoff 2, so its flag stays clear.
	assert.Equal(t, []int{0, 1, 0, 0}, res.Selection)

	res, err = knapsack.Solve([]float64{0, 0}, []int64{1, 1}, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Selection, "zero-value items are never taken")
}

// TestSolve_NoRepeatedItem guards against counting one item twice when its
// decision flag is also set at the reduced cutoff.
func TestSolve_NoRepeatedItem(t *testing.T) {
	// With W=4 the cheapest item (w=1) marks p[3][j] for every j ≥ 1.
	values := []float64{1, 1, 10}
	weights := []int64{2, 2, 1}

	res, err := knapsack.Solve(values, weights, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 11.0, res.Value)
	assert.Equal(t, []int{1, 0, 1}, res.Selection)
	checkSelection(t, values, weights, 4, res)
}

// TestSolve_SolveItems verifies the Item-slice wrapper matches Solve.
func TestSolve_SolveItems(t *testing.T) {
	items := []knapsack.Item{{Value: 3, Weight: 2}, {Value: 8, Weight: 3}, {Value: 12, Weight: 3}}

	res, err := knapsack.SolveItems(items, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, res.Value)
	assert.Equal(t, []int{0, 1, 1}, res.Selection)
	assert.Equal(t, []int{1, 2}, res.Selected())
}

// TestSolve_RollingRowMatchesFullTable confirms both memory modes agree on the value.
func TestSolve_RollingRowMatchesFullTable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		values, weights, capacity := randomInstance(rng, 12, 30)

		full, err := knapsack.Solve(values, weights, capacity, nil)
		require.NoError(t, err)

		opts := knapsack.DefaultOptions()
		opts.MemoryMode = knapsack.RollingRow
		opts.ReturnSelection = false
		roll, err := knapsack.Solve(values, weights, capacity, &opts)
		require.NoError(t, err)

		assert.Equal(t, full.Value, roll.Value, "iteration %d", iter)
		assert.Nil(t, roll.Selection, "RollingRow returns no selection")
	}
}

// TestSolve_NoSelection verifies FullTable can skip the traceback.
func TestSolve_NoSelection(t *testing.T) {
	opts := knapsack.DefaultOptions()
	opts.ReturnSelection = false

	res, err := knapsack.Solve([]float64{3, 8, 12}, []int64{2, 3, 3}, 8, &opts)
	require.NoError(t, err)
	assert.Equal(t, 23.0, res.Value)
	assert.Nil(t, res.Selection)
	assert.Zero(t, res.Weight)
}

// TestSolve_MatchesBruteForce cross-checks random small instances.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		values, weights, capacity := randomInstance(rng, 10, 25)

		want, _, err := knapsack.BruteForce(values, weights, capacity)
		require.NoError(t, err)

		res, err := knapsack.Solve(values, weights, capacity, nil)
		require.NoError(t, err)
		assert.Equal(t, want, res.Value, "iteration %d", iter)
		checkSelection(t, values, weights, capacity, res)

		var total float64
		for _, v := range values {
			total += v
		}
		assert.GreaterOrEqual(t, res.Value, 0.0)
		assert.LessOrEqual(t, res.Value, total)
	}
}

// TestSolve_MonotoneInCapacity verifies a larger capacity never lowers the optimum.
func TestSolve_MonotoneInCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	values, weights, _ := randomInstance(rng, 15, 1)

	prev := -1.0
	for w := int64(0); w <= 60; w++ {
		res, err := knapsack.Solve(values, weights, w, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Value, prev, "capacity %d", w)
		prev = res.Value
	}
}

// TestSolve_Logger verifies debug events are emitted through the configured logger.
func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	opts := knapsack.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := knapsack.Solve([]float64{3, 8, 12}, []int64{2, 3, 3}, 8, &opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "knapsack: tables allocated")
	assert.Contains(t, buf.String(), "knapsack: traceback done")
	assert.Contains(t, buf.String(), "weight=8")
}

// TestMemoryMode_String covers the mode names.
func TestMemoryMode_String(t *testing.T) {
	assert.Equal(t, "FullTable", knapsack.FullTable.String())
	assert.Equal(t, "RollingRow", knapsack.RollingRow.String())
	assert.Equal(t, "MemoryMode(?)", knapsack.MemoryMode(9).String())
}

// randomInstance builds n ≤ maxN items with integer values in [0,20] and
// weights in [1,10], plus a capacity in [0, maxW].
func randomInstance(rng *rand.Rand, maxN int, maxW int) ([]float64, []int64, int64) {
	n := rng.Intn(maxN + 1)
	values := make([]float64, n)
	weights := make([]int64, n)
	for k := 0; k < n; k++ {
		values[k] = float64(rng.Intn(21))
		weights[k] = int64(rng.Intn(10) + 1)
	}

	return values, weights, int64(rng.Intn(maxW + 1))
}
