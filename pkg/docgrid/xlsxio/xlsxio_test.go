package xlsxio

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/docgrid/docgrid-go/pkg/docgrid/grid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

func TestSave(t *testing.T) {
	tbl := model.NewTable(2, 3)
	a, err := grid.CellAt(tbl.Row(0), 0)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	a.Text = "merged"
	b, err := grid.CellAt(tbl.Row(1), 1)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if _, err := grid.Merge(a, b); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	c, err := grid.CellAt(tbl.Row(0), 2)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	c.Text = "side"

	tmpFile := filepath.Join(t.TempDir(), "table.xlsx")
	if err := Save(tbl, tmpFile); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open saved file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	v, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if v != "merged" {
		t.Errorf("A1 = %q, expected 'merged'", v)
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("Got %d merged ranges, expected 1", len(merges))
	}
	if start, end := merges[0].GetStartAxis(), merges[0].GetEndAxis(); start != "A1" || end != "B2" {
		t.Errorf("Merged range %s:%s, expected A1:B2", start, end)
	}
}

func TestLoad(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "tall")
	f.SetCellValue(sheet, "B1", "b")
	f.SetCellValue(sheet, "B2", "d")
	if err := f.MergeCell(sheet, "A1", "A2"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "in.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	tbl, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if tbl.RowCount() != 2 || tbl.ColCount() != 2 {
		t.Fatalf("Loaded %dx%d, expected 2x2", tbl.RowCount(), tbl.ColCount())
	}

	top, err := grid.CellAt(tbl.Row(0), 0)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if top.Text != "tall" {
		t.Errorf("Cell (0,0) text = %q, expected 'tall'", top.Text)
	}
	rect, err := grid.RectOf(top)
	if err != nil {
		t.Fatalf("RectOf failed: %v", err)
	}
	want := grid.Rect{Top: 0, Left: 0, Bottom: 2, Right: 1}
	if rect != want {
		t.Errorf("Rect = %+v, expected %+v", rect, want)
	}

	if err := grid.Check(tbl); err != nil {
		t.Errorf("Check failed: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	tbl := model.NewTable(3, 3)
	a, err := grid.CellAt(tbl.Row(0), 0)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	a.Text = "block"
	b, err := grid.CellAt(tbl.Row(1), 1)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if _, err := grid.Merge(a, b); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	c, err := grid.CellAt(tbl.Row(2), 2)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	c.Text = "corner"

	tmpFile := filepath.Join(t.TempDir(), "table.xlsx")
	if err := Save(tbl, tmpFile); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.RowCount() != 3 || loaded.ColCount() != 3 {
		t.Fatalf("Loaded %dx%d, expected 3x3", loaded.RowCount(), loaded.ColCount())
	}
	top, err := grid.CellAt(loaded.Row(0), 0)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	rect, err := grid.RectOf(top)
	if err != nil {
		t.Fatalf("RectOf failed: %v", err)
	}
	want := grid.Rect{Top: 0, Left: 0, Bottom: 2, Right: 2}
	if rect != want {
		t.Errorf("Rect = %+v, expected %+v", rect, want)
	}
	if top.Text != "block" {
		t.Errorf("Text = %q, expected 'block'", top.Text)
	}
	if err := grid.Check(loaded); err != nil {
		t.Errorf("Check failed: %v", err)
	}
}
