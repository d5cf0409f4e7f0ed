// Package tabledef reads and writes human-editable YAML table definitions.
//
// A definition lists the grid width and each row's physical cells:
//
//	cols: 3
//	rows:
//	  - cells:
//	      - {text: item, span: 2}
//	      - {text: qty}
//	  - cells:
//	      - {text: widget, span: 2, vmerge: restart}
//	      - {text: "4"}
package tabledef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

// Cell is one cell of a table definition.
type Cell struct {
	// Text is the cell's content.
	Text string `yaml:"text,omitempty"`
	// Span is the number of grid columns the cell covers; 0 or 1 means one.
	Span int `yaml:"span,omitempty"`
	// VMerge is the vertical-merge marker: "", "restart" or "continue".
	VMerge string `yaml:"vmerge,omitempty"`
}

// Row is one row of a table definition.
type Row struct {
	Cells []Cell `yaml:"cells"`
}

// Def is a complete table definition.
type Def struct {
	// Cols is the grid width in columns.
	Cols int `yaml:"cols"`
	// ColWidths optionally gives per-column widths in twentieths of a point.
	ColWidths []int `yaml:"col_widths,omitempty"`
	// Rows lists the table's rows top to bottom.
	Rows []Row `yaml:"rows"`
}

// Load reads a YAML table definition from path and builds its table tree.
func Load(path string) (*model.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a YAML table definition and builds its table tree.
func Decode(data []byte) (*model.Table, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing table definition: %w", err)
	}
	return FromDef(&d)
}

// FromDef builds a table tree from a parsed definition.
func FromDef(d *Def) (*model.Table, error) {
	if d.Cols < 1 {
		return nil, fmt.Errorf("table definition needs at least one column, got %d", d.Cols)
	}
	if len(d.ColWidths) > 0 && len(d.ColWidths) != d.Cols {
		return nil, fmt.Errorf("col_widths lists %d columns, cols is %d", len(d.ColWidths), d.Cols)
	}
	t := model.NewTable(0, d.Cols)
	for i, w := range d.ColWidths {
		t.GridCols()[i].Width = w
	}
	for rowIdx, dr := range d.Rows {
		row := t.AddRow()
		for cellIdx, dc := range dr.Cells {
			c := row.AddCell()
			c.Text = dc.Text
			if dc.Span > 1 {
				c.SetGridSpan(dc.Span)
			}
			m, err := parseMerge(dc.VMerge)
			if err != nil {
				return nil, fmt.Errorf("row %d, cell %d: %w", rowIdx, cellIdx, err)
			}
			c.SetVMerge(m)
		}
	}
	return t, nil
}

// Save writes t to path as a YAML table definition.
func Save(t *model.Table, path string) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode serializes t as a YAML table definition.
func Encode(t *model.Table) ([]byte, error) {
	return yaml.Marshal(ToDef(t))
}

// ToDef converts a table tree to its definition form.
func ToDef(t *model.Table) *Def {
	d := &Def{Cols: t.ColCount()}
	for _, gc := range t.GridCols() {
		if gc.Width != 0 {
			d.ColWidths = make([]int, 0, t.ColCount())
			for _, gc := range t.GridCols() {
				d.ColWidths = append(d.ColWidths, gc.Width)
			}
			break
		}
	}
	for _, row := range t.Rows() {
		dr := Row{}
		for _, c := range row.Cells() {
			dc := Cell{Text: c.Text}
			if c.GridSpan() > 1 {
				dc.Span = c.GridSpan()
			}
			if c.VMerge() != model.MergeNone {
				dc.VMerge = c.VMerge().String()
			}
			dr.Cells = append(dr.Cells, dc)
		}
		d.Rows = append(d.Rows, dr)
	}
	return d
}

func parseMerge(s string) (model.Merge, error) {
	switch s {
	case "":
		return model.MergeNone, nil
	case "restart":
		return model.MergeRestart, nil
	case "continue":
		return model.MergeContinue, nil
	default:
		return model.MergeNone, fmt.Errorf("invalid vmerge value %q (want restart or continue)", s)
	}
}
