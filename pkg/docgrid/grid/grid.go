// Package grid maps a table's physical row/cell tree onto its logical
// rectangular grid and implements rectangular-region merging of cells.
//
// Grid coordinates are 0-based (row index, column index). A cell's logical
// extent is the half-open rectangle [Top, Bottom) x [Left, Right); all of it
// is computed on demand from the tree, nothing is cached or stored.
package grid

import (
	"errors"
	"fmt"

	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

// Rect is a cell's logical extent in grid coordinates. Bottom and Right are
// exclusive, so a 1x1 cell at the origin is {0, 0, 1, 1}.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Width returns the number of grid columns the rectangle covers.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the number of grid rows the rectangle covers.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// CellAt returns the cell beginning at grid column col within row. It scans
// the row's cells left to right accumulating spans. Returns ErrNoCellAtColumn
// when col falls strictly inside another cell's span and ErrColumnOutOfRange
// when col is negative or exceeds the row's total span width.
func CellAt(row *model.Row, col int) (*model.Cell, error) {
	if col < 0 {
		return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	gridCol := 0
	for _, c := range row.Cells() {
		if gridCol == col {
			return c, nil
		}
		gridCol += c.GridSpan()
		if gridCol > col {
			return nil, fmt.Errorf("%w: %d", ErrNoCellAtColumn, col)
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
}

// Left returns the grid column at which c begins: the summed spans of the
// cells preceding it in its row.
func Left(c *model.Cell) int {
	left := 0
	for _, prev := range c.Row().Cells() {
		if prev == c {
			break
		}
		left += prev.GridSpan()
	}
	return left
}

// Right returns the grid column one past the right-most column of c's span.
func Right(c *model.Cell) int {
	return Left(c) + c.GridSpan()
}

// RowAbove returns the row prior in sequence to r. Returns ErrNoRowAbove for
// the top-most row: an upward merge-chain walk must terminate at a restart
// marker before reaching row 0.
func RowAbove(r *model.Row) (*model.Row, error) {
	idx := r.Index()
	if idx <= 0 {
		return nil, ErrNoRowAbove
	}
	return r.Table().Row(idx - 1), nil
}

// RowBelow returns the row next in sequence after r, or nil for the
// bottom-most row. Falling off the bottom of the table is not an error;
// downward walks simply stop there.
func RowBelow(r *model.Row) *model.Row {
	return r.Table().Row(r.Index() + 1)
}

// Top returns the top-most grid row index of c's vertical span. For a cell
// whose marker is absent or restart that is its own row index; a continue
// marker walks upward through aligned cells until the span's restart. The
// walk is capped at the table's row count; a chain that reaches row 0 or a
// misaligned row without finding a restart is an IntegrityError.
func Top(c *model.Cell) (int, error) {
	cur := c
	for i := 0; i < c.Row().Table().RowCount(); i++ {
		if cur.VMerge() != model.MergeContinue {
			return cur.Row().Index(), nil
		}
		left := Left(cur)
		above, err := RowAbove(cur.Row())
		if err != nil {
			return 0, &IntegrityError{Row: cur.Row().Index(), Col: left, Err: err}
		}
		cell, err := CellAt(above, left)
		if err != nil {
			return 0, &IntegrityError{Row: above.Index(), Col: left, Err: err}
		}
		cur = cell
	}
	return 0, &IntegrityError{Row: c.Row().Index(), Col: Left(c), Err: ErrNoRowAbove}
}

// Bottom returns the grid row index one past the bottom-most row of c's
// vertical span, walking downward through aligned continue cells. A cell with
// no merge marker ends at its own row. Reaching the last row, or a row where
// a wider cell passes under the span's column, ends the walk without error.
func Bottom(c *model.Cell) (int, error) {
	cur := c
	if cur.VMerge() == model.MergeNone {
		return cur.Row().Index() + 1, nil
	}
	for i := 0; i < c.Row().Table().RowCount(); i++ {
		below := RowBelow(cur.Row())
		if below == nil {
			break
		}
		left := Left(cur)
		cell, err := CellAt(below, left)
		if err != nil {
			if isNoCell(err) {
				break
			}
			return 0, &IntegrityError{Row: below.Index(), Col: left, Err: err}
		}
		if cell.VMerge() != model.MergeContinue {
			break
		}
		cur = cell
	}
	return cur.Row().Index() + 1, nil
}

func isNoCell(err error) bool {
	return errors.Is(err, ErrNoCellAtColumn)
}

// RectOf returns c's full logical extent.
func RectOf(c *model.Cell) (Rect, error) {
	top, err := Top(c)
	if err != nil {
		return Rect{}, err
	}
	bottom, err := Bottom(c)
	if err != nil {
		return Rect{}, err
	}
	left := Left(c)
	return Rect{Top: top, Left: left, Bottom: bottom, Right: left + c.GridSpan()}, nil
}
