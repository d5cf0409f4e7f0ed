package grid

import (
	"fmt"

	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

// Check verifies t is a well-formed grid: every row's summed spans equal the
// table's grid width, every continuation cell has an aligned cell above it
// whose chain ends at a restart, and every cell's extent satisfies
// top <= row < bottom and left < right. Returns the first violation found.
func Check(t *model.Table) error {
	width := t.ColCount()
	for rowIdx, row := range t.Rows() {
		sum := 0
		for _, c := range row.Cells() {
			sum += c.GridSpan()
		}
		if sum != width {
			return &IntegrityError{
				Row: rowIdx, Col: sum,
				Err: fmt.Errorf("row spans %d columns, grid is %d wide", sum, width),
			}
		}
		for _, c := range row.Cells() {
			rect, err := RectOf(c)
			if err != nil {
				return err
			}
			if rect.Top > rowIdx || rect.Bottom <= rowIdx {
				return &IntegrityError{
					Row: rowIdx, Col: rect.Left,
					Err: fmt.Errorf("vertical span [%d, %d) does not contain its own row", rect.Top, rect.Bottom),
				}
			}
			if rect.Left >= rect.Right {
				return &IntegrityError{
					Row: rowIdx, Col: rect.Left,
					Err: fmt.Errorf("empty horizontal span [%d, %d)", rect.Left, rect.Right),
				}
			}
			if c.VMerge() == model.MergeContinue {
				if err := checkContinuation(c, rowIdx); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkContinuation verifies the cell directly above a continuation is
// aligned at the same column with the same span.
func checkContinuation(c *model.Cell, rowIdx int) error {
	left := Left(c)
	above, err := RowAbove(c.Row())
	if err != nil {
		return &IntegrityError{Row: rowIdx, Col: left, Err: err}
	}
	cell, err := CellAt(above, left)
	if err != nil {
		return &IntegrityError{Row: above.Index(), Col: left, Err: err}
	}
	if cell.GridSpan() != c.GridSpan() {
		return &IntegrityError{
			Row: rowIdx, Col: left,
			Err: fmt.Errorf("continuation spans %d columns, cell above spans %d", c.GridSpan(), cell.GridSpan()),
		}
	}
	if cell.VMerge() == model.MergeNone {
		return &IntegrityError{
			Row: rowIdx, Col: left,
			Err: fmt.Errorf("continuation below a cell with no merge marker"),
		}
	}
	return nil
}
