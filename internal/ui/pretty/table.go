package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding   = 2
	ellipsis       = "..."
	heavySeparator = "="
)

// Column describes one table column.
type Column struct {
	// Title is the header text.
	Title string

	// MinWidth is the narrowest the column may be squeezed to.
	MinWidth int

	// Flex marks the column that gives up width when the table is wider
	// than the terminal. The last flexible column shrinks first.
	Flex bool

	// KeepEnd truncates from the left, preserving the tail (file paths).
	KeepEnd bool

	// AlignRight right-aligns cell content (numbers).
	AlignRight bool
}

// Table is a header plus rows of cell text.
type Table struct {
	Columns []Column
	Rows    [][]string

	// Highlight, when set, selects rows rendered with the highlight style.
	Highlight func(row int) bool
}

// TableFormatter renders tables sized to the terminal.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders tbl with a header, a separator and one line per row.
func (t *TableFormatter) Format(tbl Table) string {
	if len(tbl.Columns) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(tbl)

	var builder strings.Builder

	titles := make([]string, len(tbl.Columns))
	for i, col := range tbl.Columns {
		titles[i] = col.Title
	}
	builder.WriteString(t.styles.TableHeader.Render(t.formatCells(tbl.Columns, titles, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for idx, row := range tbl.Rows {
		line := t.formatCells(tbl.Columns, row, widths)
		if tbl.Highlight != nil && tbl.Highlight(idx) {
			line = t.styles.TableHighlight.Render(line)
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes every column to its widest cell, then
// shrinks flexible columns until the table fits the terminal.
func (t *TableFormatter) calculateColumnWidths(tbl Table) []int {
	widths := make([]int, len(tbl.Columns))
	for i, col := range tbl.Columns {
		widths[i] = max(col.MinWidth, lipgloss.Width(col.Title))
	}
	for _, row := range tbl.Rows {
		for i := range min(len(row), len(widths)) {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	for i := len(tbl.Columns) - 1; i >= 0; i-- {
		excess := totalWidth(widths) - t.termWidth
		if excess <= 0 {
			break
		}
		if tbl.Columns[i].Flex {
			widths[i] = max(tbl.Columns[i].MinWidth, widths[i]-excess)
		}
	}

	return widths
}

func totalWidth(widths []int) int {
	total := tablePadding * len(widths)
	for _, w := range widths {
		total += w
	}
	return total
}

func (t *TableFormatter) formatSeparator(widths []int) string {
	return t.styles.TableBorder.Render(strings.Repeat(heavySeparator, totalWidth(widths)))
}

func (t *TableFormatter) formatCells(cols []Column, cells []string, widths []int) string {
	var builder strings.Builder
	builder.WriteString(" ")
	for i, col := range cols {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if col.KeepEnd {
			cell = truncateStart(cell, widths[i])
		} else {
			cell = truncateEnd(cell, widths[i])
		}

		pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
		if col.AlignRight {
			builder.WriteString(pad + cell)
		} else {
			builder.WriteString(cell + pad)
		}
		if i < len(cols)-1 {
			builder.WriteString(strings.Repeat(" ", tablePadding))
		}
	}
	return strings.TrimRight(builder.String(), " ")
}

// truncateEnd truncates a string to maxLen runes, adding "..." if truncated.
func truncateEnd(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}

// truncateStart truncates a string from the left, preserving its end.
func truncateStart(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= len(ellipsis) {
		return string(runes[len(runes)-maxLen:])
	}
	return ellipsis + string(runes[len(runes)-maxLen+len(ellipsis):])
}
