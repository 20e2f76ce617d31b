package knapsack

// valueTable is the dense (N+1)×(W+1) table f, flattened row-major.
// f.at(i, j) is the best value using the first i items with weight ≤ j.
type valueTable struct {
	cols  int
	cells []float64
}

// newValueTable allocates a zeroed table, so row 0 and column 0 already hold 0.
func newValueTable(rows, cols int) *valueTable {
	return &valueTable{
		cols:  cols,
		cells: make([]float64, rows*cols),
	}
}

func (t *valueTable) at(i, j int) float64 { return t.cells[i*t.cols+j] }

func (t *valueTable) set(i, j int, v float64) { t.cells[i*t.cols+j] = v }

// row returns row i as a slice sharing the table storage.
func (t *valueTable) row(i int) []float64 {
	off := i * t.cols

	return t.cells[off : off+t.cols]
}
