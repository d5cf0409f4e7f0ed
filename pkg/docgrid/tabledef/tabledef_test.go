package tabledef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docgrid/docgrid-go/pkg/docgrid/grid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

func TestDecode(t *testing.T) {
	def := `
cols: 3
rows:
  - cells:
      - {text: item, span: 2}
      - {text: qty}
  - cells:
      - {text: widget, span: 2, vmerge: restart}
      - {text: "4"}
  - cells:
      - {span: 2, vmerge: continue}
      - {text: "7"}
`
	tbl, err := Decode([]byte(def))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if tbl.ColCount() != 3 {
		t.Errorf("ColCount = %d, expected 3", tbl.ColCount())
	}
	if tbl.RowCount() != 3 {
		t.Errorf("RowCount = %d, expected 3", tbl.RowCount())
	}

	c, err := grid.CellAt(tbl.Row(0), 0)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if c.Text != "item" || c.GridSpan() != 2 {
		t.Errorf("Cell (0,0) = %q span %d, expected 'item' span 2", c.Text, c.GridSpan())
	}

	c, err = grid.CellAt(tbl.Row(1), 0)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	rect, err := grid.RectOf(c)
	if err != nil {
		t.Fatalf("RectOf failed: %v", err)
	}
	want := grid.Rect{Top: 1, Left: 0, Bottom: 3, Right: 2}
	if rect != want {
		t.Errorf("Rect = %+v, expected %+v", rect, want)
	}

	if err := grid.Check(tbl); err != nil {
		t.Errorf("Check failed: %v", err)
	}
}

func TestDecodeInvalidVMerge(t *testing.T) {
	def := `
cols: 1
rows:
  - cells:
      - {text: a, vmerge: sideways}
`
	_, err := Decode([]byte(def))
	if err == nil {
		t.Fatal("Expected error for invalid vmerge value")
	}
	if !strings.Contains(err.Error(), "sideways") {
		t.Errorf("Error does not name the bad value: %v", err)
	}
}

func TestDecodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"no columns", "rows: []"},
		{"negative columns", "cols: -1"},
		{"width count mismatch", "cols: 2\ncol_widths: [100]"},
		{"not yaml", "cols: [1,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.def)); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tbl := model.NewTable(0, 2)
	for i := 0; i < 2; i++ {
		row := tbl.AddRow()
		c := row.AddCell()
		c.SetGridSpan(2)
		if i == 0 {
			c.Text = "tall"
			c.SetVMerge(model.MergeRestart)
		} else {
			c.SetVMerge(model.MergeContinue)
		}
	}
	tbl.GridCols()[0].Width = 1440
	tbl.GridCols()[1].Width = 2880

	tmpFile := filepath.Join(t.TempDir(), "table.yaml")
	if err := Save(tbl, tmpFile); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ColCount() != 2 || loaded.RowCount() != 2 {
		t.Fatalf("Loaded %dx%d, expected 2x2", loaded.RowCount(), loaded.ColCount())
	}
	if w := loaded.GridCols()[1].Width; w != 2880 {
		t.Errorf("Column width = %d, expected 2880", w)
	}
	top := loaded.Row(0).Cell(0)
	if top.Text != "tall" || top.GridSpan() != 2 || top.VMerge() != model.MergeRestart {
		t.Errorf("Top cell not restored: %q span %d marker %v", top.Text, top.GridSpan(), top.VMerge())
	}
	cont := loaded.Row(1).Cell(0)
	if cont.VMerge() != model.MergeContinue {
		t.Errorf("Continuation marker = %v, expected continue", cont.VMerge())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
