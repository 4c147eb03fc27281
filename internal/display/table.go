package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column describes one fixed-width column. A zero Width leaves the column
// unpadded, which only makes sense for the last one.
type Column struct {
	Title string
	Width int
	Right bool
}

// Table renders rows under a header with fixed column widths. Cells wider
// than their column are truncated with an ellipsis.
type Table struct {
	Columns []Column
	rows    [][]string
}

// NewTable creates an empty table.
func NewTable(columns ...Column) *Table {
	return &Table{Columns: columns}
}

// Append adds a row. Missing cells render empty.
func (t *Table) Append(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the header, a rule and every row.
func (t *Table) Render(w io.Writer) error {
	titles := make([]string, len(t.Columns))
	ruleWidth := 0
	for i, c := range t.Columns {
		titles[i] = c.Title
		width := c.Width
		if width == 0 {
			width = runewidth.StringWidth(c.Title)
		}
		ruleWidth += width
	}
	ruleWidth += len(t.Columns) - 1

	if _, err := fmt.Fprintln(w, t.line(titles)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", ruleWidth)); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, t.line(row)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) line(cells []string) string {
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = pad(cell, c)
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

func pad(s string, c Column) string {
	if c.Width == 0 {
		return s
	}
	s = runewidth.Truncate(s, c.Width, "...")
	if c.Right {
		return runewidth.FillLeft(s, c.Width)
	}
	return runewidth.FillRight(s, c.Width)
}
