// Package render draws a table's logical grid as ASCII box art, with merged
// regions shown as single openings in the border lines.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/docgrid/docgrid-go/pkg/docgrid/grid"
	"github.com/docgrid/docgrid-go/pkg/docgrid/model"
)

// Renderer writes ASCII renderings of tables.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Table renders t. Vertically merged cells keep the border above their
// continuation rows open; horizontally merged cells omit the separators
// inside their span.
func (r *Renderer) Table(t *model.Table) error {
	widths := columnWidths(t)
	for _, row := range t.Rows() {
		if _, err := fmt.Fprintln(r.w, borderLine(coverage(row, t.ColCount()), widths)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.w, contentLine(row, widths)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, borderLine(nil, widths))
	return err
}

// TableString renders t to a string.
func TableString(t *model.Table) (string, error) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf).Table(t); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// columnWidths computes a display width per grid column: wide enough for
// every single-column cell's text, then widened where a multi-column span
// still cannot fit its text.
func columnWidths(t *model.Table) []int {
	widths := make([]int, t.ColCount())
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range t.Rows() {
		for _, c := range row.Cells() {
			if c.VMerge() == model.MergeContinue || c.Text == "" {
				continue
			}
			left := grid.Left(c)
			if c.GridSpan() != 1 || left >= len(widths) {
				continue
			}
			if need := utf8.RuneCountInString(c.Text) + 2; widths[left] < need {
				widths[left] = need
			}
		}
	}
	for _, row := range t.Rows() {
		for _, c := range row.Cells() {
			span := c.GridSpan()
			if c.VMerge() == model.MergeContinue || c.Text == "" || span == 1 {
				continue
			}
			left := grid.Left(c)
			end := left + span
			if end > len(widths) {
				continue
			}
			have := span - 1
			for i := left; i < end; i++ {
				have += widths[i]
			}
			if need := utf8.RuneCountInString(c.Text) + 2; have < need {
				widths[end-1] += need - have
			}
		}
	}
	return widths
}

// coverage maps each grid column of a row to the physical cell covering it.
func coverage(row *model.Row, width int) []*model.Cell {
	cov := make([]*model.Cell, width)
	col := 0
	for _, c := range row.Cells() {
		for i := 0; i < c.GridSpan() && col < width; i++ {
			cov[col] = c
			col++
		}
	}
	return cov
}

// borderLine draws the horizontal border above the row covered by cov, left
// open under continuation cells. A nil cov draws a closed border, used below
// the last row.
func borderLine(cov []*model.Cell, widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for col, w := range widths {
		ch := "-"
		if cov != nil && cov[col] != nil && cov[col].VMerge() == model.MergeContinue {
			ch = " "
		}
		b.WriteString(strings.Repeat(ch, w))
		b.WriteByte('+')
	}
	return b.String()
}

// contentLine draws a row's cell texts. Continuation cells render blank.
func contentLine(row *model.Row, widths []int) string {
	var b strings.Builder
	b.WriteByte('|')
	col := 0
	for _, c := range row.Cells() {
		end := col + c.GridSpan()
		if end > len(widths) {
			end = len(widths)
		}
		w := end - col - 1
		for i := col; i < end; i++ {
			w += widths[i]
		}
		text := ""
		if c.VMerge() != model.MergeContinue {
			text = c.Text
		}
		b.WriteString(pad(" "+text, w))
		b.WriteByte('|')
		col = end
	}
	return b.String()
}

// pad fits s to exactly w display columns, truncating or space-filling.
func pad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(s)
	if n > w {
		runes := []rune(s)
		return string(runes[:w])
	}
	return s + strings.Repeat(" ", w-n)
}
