package model

// Row is an ordered sequence of cells. Physical cell order is grid-column
// order of each cell's starting column.
type Row struct {
	table *Table
	cells []*Cell
}

// Table returns the table this row belongs to, or nil if unattached.
func (r *Row) Table() *Table {
	return r.table
}

// Index returns this row's position in its table, which is also its grid row
// index. Returns -1 if the row is not attached to a table.
func (r *Row) Index() int {
	if r.table == nil {
		return -1
	}
	for i, tr := range r.table.rows {
		if tr == r {
			return i
		}
	}
	return -1
}

// Cells returns the row's cells in physical order. The returned slice must
// not be mutated directly; use InsertCell and RemoveCell.
func (r *Row) Cells() []*Cell {
	return r.cells
}

// CellCount returns the number of physical cells in the row.
func (r *Row) CellCount() int {
	return len(r.cells)
}

// Cell returns the cell at physical position i, or nil if out of range.
func (r *Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.cells) {
		return nil
	}
	return r.cells[i]
}

// AddCell appends a new empty cell to the row and returns it.
func (r *Row) AddCell() *Cell {
	c := NewCell()
	c.row = r
	r.cells = append(r.cells, c)
	return c
}

// InsertCell inserts c at physical position i, adopting it into this row.
// Positions past the end append.
func (r *Row) InsertCell(i int, c *Cell) {
	if i < 0 {
		i = 0
	}
	if i > len(r.cells) {
		i = len(r.cells)
	}
	c.row = r
	r.cells = append(r.cells, nil)
	copy(r.cells[i+1:], r.cells[i:])
	r.cells[i] = c
}

// RemoveCell removes the cell at physical position i from the row. Out of
// range positions are ignored.
func (r *Row) RemoveCell(i int) {
	if i < 0 || i >= len(r.cells) {
		return
	}
	r.cells[i].row = nil
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
}
