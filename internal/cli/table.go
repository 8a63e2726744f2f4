package cli

import (
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches SGR escape sequences, which take no columns.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Table is a column-aligned text table. Widths are measured in terminal
// columns, ignoring colour escapes.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		rows:      make([][]string, 0),
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth truncates plain text in a column to maxWidth columns.
// Cells carrying colour escapes are never truncated.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) cell(col int, s string) string {
	if limit := t.maxWidths[col]; limit > 0 && !ansiPattern.MatchString(s) {
		return runewidth.Truncate(s, limit, "…")
	}
	return s
}

// Render formats the table with a dashed separator under the headers.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	cells := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells[i] = make([]string, len(row))
		for col, s := range row {
			cells[i][col] = t.cell(col, s)
		}
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = displayWidth(h)
	}
	for _, row := range cells {
		for i, s := range row {
			colWidths[i] = max(colWidths[i], displayWidth(s))
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder
	writeLine := func(parts []string) {
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(h, colWidths[i])
	}
	writeLine(parts)

	for i, w := range colWidths {
		parts[i] = strings.Repeat("-", w)
	}
	writeLine(parts)

	for _, row := range cells {
		for i, s := range row {
			parts[i] = padRight(s, colWidths[i])
		}
		writeLine(parts)
	}

	return result.String()
}

// Write renders the table to w.
func (t *Table) Write(w io.Writer) error {
	_, err := io.WriteString(w, t.Render())
	return err
}

// displayWidth is the number of terminal columns s occupies.
func displayWidth(s string) int {
	return runewidth.StringWidth(ansiPattern.ReplaceAllString(s, ""))
}

// padRight pads s with spaces to width columns. Wider strings are returned
// unchanged.
func padRight(s string, width int) string {
	if w := displayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
