package grid

import (
	"fmt"

	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

// Merge merges the rectangular region having a and b as diagonal corners into
// a single spanning cell and returns the surviving top-left cell. The two
// cells' extents must already align into a rectangle on both axes; otherwise
// an InvalidSpanError is returned and the table is left unmodified.
// Validation completes before any mutation, so a failed merge never leaves
// the table partially grown.
func Merge(a, b *model.Cell) (*model.Cell, error) {
	if a.Row() == nil || b.Row() == nil || a.Row().Table() != b.Row().Table() {
		return nil, fmt.Errorf("cells do not belong to the same table")
	}
	union, err := spanDimensions(a, b)
	if err != nil {
		return nil, err
	}
	return grow(a.Row().Table(), union)
}

// spanDimensions returns the extent of the merged cell formed by using a and
// b as opposite corners, or an InvalidSpanError when the union would not be
// rectangular.
func spanDimensions(a, b *model.Cell) (Rect, error) {
	ra, err := RectOf(a)
	if err != nil {
		return Rect{}, err
	}
	rb, err := RectOf(b)
	if err != nil {
		return Rect{}, err
	}
	if err := raiseOnInvertedL(ra, rb); err != nil {
		return Rect{}, err
	}
	if err := raiseOnTeeShaped(ra, rb); err != nil {
		return Rect{}, err
	}
	return Rect{
		Top:    min(ra.Top, rb.Top),
		Left:   min(ra.Left, rb.Left),
		Bottom: max(ra.Bottom, rb.Bottom),
		Right:  max(ra.Right, rb.Right),
	}, nil
}

// raiseOnInvertedL rejects pairs whose extents start on the same row or
// column but end on different ones; merging those would produce an L shape.
func raiseOnInvertedL(a, b Rect) error {
	if a.Top == b.Top && a.Bottom != b.Bottom {
		return &InvalidSpanError{Reason: "cells share a top row but not a bottom row"}
	}
	if a.Left == b.Left && a.Right != b.Right {
		return &InvalidSpanError{Reason: "cells share a left column but not a right column"}
	}
	return nil
}

// raiseOnTeeShaped rejects pairs where one extent strictly contains the
// other's rows or columns without matching them; merging those would produce
// a tee or cross shape.
func raiseOnTeeShaped(a, b Rect) error {
	topMost, other := a, b
	if b.Top < a.Top {
		topMost, other = b, a
	}
	if topMost.Top < other.Top && topMost.Bottom > other.Bottom {
		return &InvalidSpanError{Reason: "one cell's rows strictly contain the other's"}
	}

	leftMost, other := a, b
	if b.Left < a.Left {
		leftMost, other = b, a
	}
	if leftMost.Left < other.Left && leftMost.Right > other.Right {
		return &InvalidSpanError{Reason: "one cell's columns strictly contain the other's"}
	}
	return nil
}

// grow expands the cell at the rectangle's top-left corner to span the full
// rectangle. Each row below the first gets a continuation placeholder at the
// left column spanning the full width, created fresh when the row has no cell
// there; cells the rectangle subsumes are removed. Errors here indicate an
// internal invariant violation, never a recoverable condition.
func grow(t *model.Table, r Rect) (*model.Cell, error) {
	var topLeft *model.Cell
	for rowIdx := r.Top; rowIdx < r.Bottom; rowIdx++ {
		row := t.Row(rowIdx)
		if row == nil {
			return nil, &IntegrityError{Row: rowIdx, Col: r.Left, Err: ErrRowOutOfRange}
		}
		cell, err := cellStartingAt(row, r.Left)
		if err != nil {
			return nil, err
		}
		if err := absorbFollowing(row, cell, r); err != nil {
			return nil, err
		}
		cell.SetGridSpan(r.Width())
		if rowIdx == r.Top {
			if r.Height() > 1 {
				cell.SetVMerge(model.MergeRestart)
			} else {
				cell.SetVMerge(model.MergeNone)
			}
			topLeft = cell
		} else {
			cell.SetVMerge(model.MergeContinue)
			cell.Text = ""
		}
	}
	return topLeft, nil
}

// cellStartingAt returns the cell beginning exactly at grid column col in
// row. When the row's physical cells end exactly where the column begins, a
// fresh placeholder is appended; a cell straddling the column, or a row too
// narrow to reach it, is a malformed grid.
func cellStartingAt(row *model.Row, col int) (*model.Cell, error) {
	gridCol := 0
	for _, c := range row.Cells() {
		if gridCol == col {
			return c, nil
		}
		gridCol += c.GridSpan()
		if gridCol > col {
			return nil, &IntegrityError{Row: row.Index(), Col: col, Err: ErrNoCellAtColumn}
		}
	}
	if gridCol != col {
		return nil, &IntegrityError{Row: row.Index(), Col: col, Err: ErrColumnOutOfRange}
	}
	c := model.NewCell()
	row.InsertCell(row.CellCount(), c)
	return c, nil
}

// absorbFollowing removes the cells after target whose spans the rectangle
// subsumes. Contiguity guarantees the removed spans end exactly at the
// rectangle's right edge; a span crossing that edge is a malformed grid.
func absorbFollowing(row *model.Row, target *model.Cell, r Rect) error {
	if r.Left+target.GridSpan() > r.Right {
		return &IntegrityError{
			Row: row.Index(), Col: r.Left,
			Err: fmt.Errorf("cell span crosses the merge boundary at column %d", r.Right),
		}
	}
	idx := -1
	for i, c := range row.Cells() {
		if c == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &IntegrityError{Row: row.Index(), Col: r.Left, Err: fmt.Errorf("cell not found in its row")}
	}
	for idx+1 < row.CellCount() {
		next := row.Cell(idx + 1)
		start := Left(next)
		if start >= r.Right {
			break
		}
		if start+next.GridSpan() > r.Right {
			return &IntegrityError{
				Row: row.Index(), Col: start,
				Err: fmt.Errorf("cell span crosses the merge boundary at column %d", r.Right),
			}
		}
		row.RemoveCell(idx + 1)
	}
	return nil
}
