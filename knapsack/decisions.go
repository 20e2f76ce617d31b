package knapsack

import "github.com/RoaringBitmap/roaring/v2"

// decisionTable is the (N+1)×(W+1) table p.
// A cell is present in the bitmap iff item i changed the optimum at cutoff j.
type decisionTable struct {
	cols uint32
	rb   *roaring.Bitmap
}

// newDecisionTable creates an empty table; callers must check the grid fits in uint32 first.
func newDecisionTable(cols int) *decisionTable {
	return &decisionTable{
		cols: uint32(cols),
		rb:   roaring.New(),
	}
}

func (d *decisionTable) mark(i, j int) { d.rb.Add(uint32(i)*d.cols + uint32(j)) }

func (d *decisionTable) used(i, j int) bool { return d.rb.Contains(uint32(i)*d.cols + uint32(j)) }

// count returns the number of set decisions.
func (d *decisionTable) count() uint64 { return d.rb.GetCardinality() }
