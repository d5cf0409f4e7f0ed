package model

// GridCol is a column definition. The table's grid width is the number of
// GridCol entries it owns.
type GridCol struct {
	// Width is the column width in twentieths of a point, 0 when unset.
	Width int
}

// Table is an ordered sequence of rows plus the column-definition list that
// fixes the grid width. Every row's summed cell spans must equal the grid
// width; the grid package's Check verifies that invariant.
type Table struct {
	gridCols []*GridCol
	rows     []*Row
}

// NewTable returns a table of rows x cols unit cells with no merges.
func NewTable(rows, cols int) *Table {
	t := &Table{}
	for c := 0; c < cols; c++ {
		t.AddGridCol()
	}
	for r := 0; r < rows; r++ {
		row := t.AddRow()
		for range t.gridCols {
			row.AddCell()
		}
	}
	return t
}

// ColCount returns the number of grid columns in the table.
func (t *Table) ColCount() int {
	return len(t.gridCols)
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// GridCols returns the table's column definitions.
func (t *Table) GridCols() []*GridCol {
	return t.gridCols
}

// Rows returns the table's rows in order. The returned slice must not be
// mutated directly.
func (t *Table) Rows() []*Row {
	return t.rows
}

// Row returns the row at index i, or nil if out of range.
func (t *Table) Row(i int) *Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// AddRow appends a new, empty bottom-most row and returns it. The caller is
// responsible for populating it to the table's grid width.
func (t *Table) AddRow() *Row {
	r := &Row{table: t}
	t.rows = append(t.rows, r)
	return r
}

// AddGridCol appends a new right-most column definition and returns it. The
// caller is responsible for widening each row to match.
func (t *Table) AddGridCol() *GridCol {
	gc := &GridCol{}
	t.gridCols = append(t.gridCols, gc)
	return gc
}
