// Package docgrid provides table construction, file I/O dispatch and
// grid-coordinate merging over the table tree in model and the engine in
// grid.
package docgrid

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docgrid/docgrid-go/pkg/docgrid/grid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
	"github.com/docgrid/docgrid-go/pkg/docgrid/tabledef"
	"github.com/docgrid/docgrid-go/pkg/docgrid/xlsxio"
)

// New returns a table of rows x cols unit cells.
func New(rows, cols int) *model.Table {
	return model.NewTable(rows, cols)
}

// AddRow appends a new bottom-most row populated with one unit cell per grid
// column and returns it.
func AddRow(t *model.Table) *model.Row {
	row := t.AddRow()
	for range t.GridCols() {
		row.AddCell()
	}
	return row
}

// AddColumn appends a new right-most grid column, adding one unit cell to
// each row, and returns its definition.
func AddColumn(t *model.Table) *model.GridCol {
	gc := t.AddGridCol()
	for _, row := range t.Rows() {
		row.AddCell()
	}
	return gc
}

// Load reads the table at path, choosing the codec by file extension:
// .yaml/.yml for table definitions, .xlsx for workbooks.
func Load(path string) (*model.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return tabledef.Load(path)
	case ".xlsx":
		return xlsxio.Load(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes t to path, choosing the codec by file extension as Load does.
func Save(t *model.Table, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return tabledef.Save(t, path)
	case ".xlsx":
		return xlsxio.Save(t, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// CellAt returns the cell starting at grid coordinate (rowIdx, colIdx).
func CellAt(t *model.Table, rowIdx, colIdx int) (*model.Cell, error) {
	row := t.Row(rowIdx)
	if row == nil {
		return nil, fmt.Errorf("%w: %d", grid.ErrRowOutOfRange, rowIdx)
	}
	return grid.CellAt(row, colIdx)
}

// MergeAt merges the rectangular region having the cells at (r1, c1) and
// (r2, c2) as diagonal corners and returns the surviving top-left cell.
func MergeAt(t *model.Table, r1, c1, r2, c2 int) (*model.Cell, error) {
	a, err := CellAt(t, r1, c1)
	if err != nil {
		return nil, err
	}
	b, err := CellAt(t, r2, c2)
	if err != nil {
		return nil, err
	}
	return grid.Merge(a, b)
}
