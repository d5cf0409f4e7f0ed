// Package xlsxio imports and exports table trees as xlsx worksheets, mapping
// horizontal and vertical cell spans to merged cell ranges.
package xlsxio

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/docgrid/docgrid-go/pkg/docgrid/grid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

// Save writes t to path as an xlsx workbook with a single sheet. Each span
// origin writes its text at the rectangle's top-left coordinate; rectangles
// larger than one cell become merged ranges.
func Save(t *model.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := ToFile(f, t); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// ToFile writes t onto the first sheet of an open workbook. The sheet
// dimension is stamped with the full grid extent so empty trailing rows and
// columns survive a round trip.
func ToFile(f *excelize.File, t *model.Table) error {
	sheet := f.GetSheetName(0)
	if t.RowCount() > 0 && t.ColCount() > 0 {
		bottomRight, err := excelize.CoordinatesToCellName(t.ColCount(), t.RowCount())
		if err != nil {
			return err
		}
		if err := f.SetSheetDimension(sheet, "A1:"+bottomRight); err != nil {
			return err
		}
	}
	for _, row := range t.Rows() {
		for _, c := range row.Cells() {
			if c.VMerge() == model.MergeContinue {
				continue
			}
			rect, err := grid.RectOf(c)
			if err != nil {
				return err
			}
			topLeft, err := excelize.CoordinatesToCellName(rect.Left+1, rect.Top+1)
			if err != nil {
				return err
			}
			if c.Text != "" {
				if err := f.SetCellValue(sheet, topLeft, c.Text); err != nil {
					return err
				}
			}
			if rect.Width() > 1 || rect.Height() > 1 {
				// Rect bounds are exclusive, xlsx range corners inclusive.
				bottomRight, err := excelize.CoordinatesToCellName(rect.Right, rect.Bottom)
				if err != nil {
					return err
				}
				if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Load reads the first sheet of the workbook at path into a table tree.
func Load(path string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromFile(f)
}

// FromFile reads the first sheet of an open workbook into a table tree. The
// grid is sized to cover every populated cell and merged range; merged
// ranges are replayed through the merge planner so the resulting tree
// carries proper spans and continuation markers.
func FromFile(f *excelize.File) (*model.Table, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	nRows := len(rows)
	nCols := 0
	for _, r := range rows {
		if len(r) > nCols {
			nCols = len(r)
		}
	}
	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		ref := dim
		if i := strings.Index(dim, ":"); i >= 0 {
			ref = dim[i+1:]
		}
		if c, r, err := excelize.CellNameToCoordinates(ref); err == nil {
			if r > nRows {
				nRows = r
			}
			if c > nCols {
				nCols = c
			}
		}
	}
	type span struct {
		r1, c1, r2, c2 int // 0-based, inclusive
	}
	spans := make([]span, 0, len(merges))
	for _, m := range merges {
		c1, r1, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return nil, err
		}
		c2, r2, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return nil, err
		}
		spans = append(spans, span{r1 - 1, c1 - 1, r2 - 1, c2 - 1})
		if r2 > nRows {
			nRows = r2
		}
		if c2 > nCols {
			nCols = c2
		}
	}
	if nRows == 0 || nCols == 0 {
		return nil, fmt.Errorf("sheet %q has no cells", sheet)
	}

	t := model.NewTable(nRows, nCols)
	for rIdx, r := range rows {
		for cIdx, v := range r {
			if v == "" {
				continue
			}
			cell, err := grid.CellAt(t.Row(rIdx), cIdx)
			if err != nil {
				return nil, err
			}
			cell.Text = v
		}
	}
	// Merged ranges never overlap in a valid workbook, so both corners of
	// each range are still addressable as span origins when it is applied.
	for _, s := range spans {
		a, err := grid.CellAt(t.Row(s.r1), s.c1)
		if err != nil {
			return nil, err
		}
		b, err := grid.CellAt(t.Row(s.r2), s.c2)
		if err != nil {
			return nil, err
		}
		if _, err := grid.Merge(a, b); err != nil {
			return nil, fmt.Errorf("applying merged range at row %d, column %d: %w", s.r1, s.c1, err)
		}
	}
	return t, nil
}
