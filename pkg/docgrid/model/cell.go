// Package model defines the physical table tree the grid engine operates on:
// a Table holding an ordered sequence of Rows, each holding an ordered
// sequence of Cells. Grid geometry (logical row/column addressing, merge
// rectangles) is computed over this tree by the grid package and is never
// stored here.
package model

// Merge is a cell's vertical-merge marker.
type Merge int

const (
	// MergeNone means the cell does not participate in a vertical merge.
	MergeNone Merge = iota
	// MergeRestart marks the top cell of a vertical span.
	MergeRestart
	// MergeContinue marks a cell that continues the span from the row above.
	MergeContinue
)

func (m Merge) String() string {
	switch m {
	case MergeRestart:
		return "restart"
	case MergeContinue:
		return "continue"
	default:
		return "none"
	}
}

// Cell is a single table cell. It occupies a horizontal run of grid columns
// starting at the column where it appears in its row; the run length is its
// grid span. A cell holds no reference to the cells above or below it in a
// vertical span; those relations are positional lookups.
type Cell struct {
	// Text is the cell's content payload.
	Text string

	row      *Row
	gridSpan int // 0 means unset, reads as 1
	vMerge   Merge
}

// NewCell returns a new, minimally valid empty cell: one column wide, no
// vertical merge, not yet attached to a row.
func NewCell() *Cell {
	return &Cell{}
}

// Row returns the row this cell belongs to, or nil if unattached.
func (c *Cell) Row() *Row {
	return c.row
}

// GridSpan returns the number of grid columns this cell spans. Defaults to 1
// when no span has been set.
func (c *Cell) GridSpan() int {
	if c.gridSpan < 1 {
		return 1
	}
	return c.gridSpan
}

// SetGridSpan sets the number of grid columns this cell spans. Values below 1
// clear the span back to the default.
func (c *Cell) SetGridSpan(n int) {
	if n < 1 {
		n = 0
	}
	c.gridSpan = n
}

// VMerge returns the cell's vertical-merge marker.
func (c *Cell) VMerge() Merge {
	return c.vMerge
}

// SetVMerge sets the cell's vertical-merge marker. MergeNone clears it.
func (c *Cell) SetVMerge(m Merge) {
	c.vMerge = m
}
