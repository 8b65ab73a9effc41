package cli

import "strings"

// Table provides column-aligned table output. Columns are sized to their
// widest cell and joined with a two-space gutter.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// NewPlainTable creates a table without a header row. Column widths are
// derived from the rows alone.
func NewPlainTable() *Table {
	return &Table{}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	// Pad with empty strings if needed
	for len(cells) < len(t.headers) {
		cells = append(cells, "")
	}
	// Update column widths, growing the column set for headerless tables
	for len(t.widths) < len(cells) {
		t.widths = append(t.widths, 0)
	}
	for i, cell := range cells {
		if len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, cells)
}

// String renders the table as a string. The final cell of each line is
// written unpadded so output carries no trailing whitespace.
func (t *Table) String() string {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return ""
	}

	var b strings.Builder

	if len(t.headers) > 0 {
		// Header row
		for i, h := range t.headers {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(t.headers)-1 {
				b.WriteString(Header(h))
			} else {
				b.WriteString(Header(padRight(h, t.widths[i])))
			}
		}
		b.WriteString("\n")

		// Separator
		for i, w := range t.widths {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(Dim(strings.Repeat("─", w)))
		}
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(t.widths) {
				break
			}
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(padRight(cell, t.widths[i]))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads a string to the right with spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
