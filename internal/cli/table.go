package cli

import (
	"strings"
)

// Table is a plain-text table formatter with dynamic column widths and
// optional word-wrapping for wide cells.
type Table struct {
	headers []string
	rows    [][]string
	padding int
	wrapCol int // column index that may wrap, -1 for none
	wrapAt  int // wrap width for wrapCol
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
		wrapCol: -1,
	}
}

// SetWrapColumn marks one column as wrappable at the given width.
// Cells in other columns are rendered on a single line.
func (t *Table) SetWrapColumn(col, width int) {
	t.wrapCol = col
	t.wrapAt = width
}

// AddRow adds a row to the table. Short rows are padded with empty
// cells to the header count; long rows are truncated.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap the designated column, expanding each row into one or more
	// physical lines per cell.
	wrapped := make([][][]string, len(t.rows))
	for ri, row := range t.rows {
		wrapped[ri] = make([][]string, len(row))
		for ci, cell := range row {
			if ci == t.wrapCol && t.wrapAt > 0 {
				wrapped[ri][ci] = wrapText(cell, t.wrapAt)
			} else {
				wrapped[ri][ci] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for ci, lines := range row {
			for _, line := range lines {
				if len(line) > widths[ci] {
					widths[ci] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteString("\n")

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for line := 0; line < height; line++ {
			for ci := range t.headers {
				cell := ""
				if line < len(row[ci]) {
					cell = row[ci][line]
				}
				cells[ci] = padRight(cell, widths[ci])
			}
			b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// padRight pads a string with spaces on the right to reach the desired
// width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text to fit within the given width, breaking at word
// boundaries and hard-splitting words longer than the width.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
