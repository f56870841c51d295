// Package ui renders tables, ages, and styled output for the terminal.
package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

var cellFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// TableBuilder accumulates rows and tracks column widths as they arrive.
type TableBuilder struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	b := &TableBuilder{
		headers: make([]string, len(headers)),
		rows:    make([][]string, 0, capacity),
		widths:  make([]int, len(headers)),
	}
	for i, header := range headers {
		header = cellFlattener.Replace(header)
		b.headers[i] = header
		b.widths[i] = displayWidth(header)
	}
	return b
}

// AddRow appends a row, widening columns as needed. Extra cells beyond the
// header count are dropped.
func (b *TableBuilder) AddRow(row []string) {
	cells := make([]string, len(b.headers))
	for i := range cells {
		if i < len(row) {
			cells[i] = cellFlattener.Replace(row[i])
		}
		if width := displayWidth(cells[i]); width > b.widths[i] {
			b.widths[i] = width
		}
	}
	b.rows = append(b.rows, cells)
}

// String renders the aligned table. Padding is computed on visible width, so
// styled cells line up with plain ones.
func (b *TableBuilder) String() string {
	var out strings.Builder
	b.writeRow(&out, b.headers)
	for _, row := range b.rows {
		b.writeRow(&out, row)
	}
	return out.String()
}

func (b *TableBuilder) writeRow(out *strings.Builder, row []string) {
	for i, cell := range row {
		out.WriteString(cell)
		out.WriteString(strings.Repeat(" ", b.widths[i]-displayWidth(cell)))
		if i < len(row)-1 {
			out.WriteString("  ")
		}
	}
	out.WriteByte('\n')
}

// FormatTable renders headers and rows as an aligned table in one call.
func FormatTable(headers []string, rows [][]string) string {
	b := NewTableBuilder(headers, len(rows))
	for _, row := range rows {
		b.AddRow(row)
	}
	return b.String()
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	value = cellFlattener.Replace(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncateVisible(value, tableCellMaxWidth-len(tableCellEllipsis)) + tableCellEllipsis
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

// truncateVisible keeps the first max visible runes, carrying any ANSI color
// sequences through unmodified so styling is not cut mid-escape.
func truncateVisible(value string, max int) string {
	if max <= 0 {
		return ""
	}

	var out strings.Builder
	visible := 0
	rest := value
	for rest != "" {
		if seq := leadingANSISequence(rest); seq != "" {
			out.WriteString(seq)
			rest = rest[len(seq):]
			continue
		}
		if visible >= max {
			break
		}
		_, size := utf8.DecodeRuneInString(rest)
		out.WriteString(rest[:size])
		rest = rest[size:]
		visible++
	}
	return out.String()
}

// leadingANSISequence returns the CSI color sequence at the start of value,
// or "" if value does not begin with one.
func leadingANSISequence(value string) string {
	if !strings.HasPrefix(value, "\x1b[") {
		return ""
	}
	if end := strings.IndexByte(value, 'm'); end >= 0 {
		return value[:end+1]
	}
	return value
}

func stripANSICodes(input string) string {
	var out strings.Builder
	rest := input
	for rest != "" {
		escape := strings.IndexByte(rest, '\x1b')
		if escape < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:escape])
		rest = rest[escape:]
		if seq := leadingANSISequence(rest); seq != "" {
			rest = rest[len(seq):]
		} else {
			rest = rest[1:]
		}
	}
	return out.String()
}
