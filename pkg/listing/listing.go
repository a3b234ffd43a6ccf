// Package listing parses the directory table dialect into sections and rows.
//
// A document is a sequence of lines. Lines starting with the anchor open a
// section, lines starting with "|---" are table separators and are skipped,
// and any other line starting with "|" is a row of the most recently opened
// section. Everything else is ignored.
package listing

import (
	"strings"
)

const (
	// Delimiter starts every table line and separates its cells.
	Delimiter = "|"

	// SeparatorPrefix marks the table separator row beneath a header row.
	SeparatorPrefix = "|---"
)

// Cell indices of a directory row.
const (
	FieldTitle = iota
	FieldDescription
	FieldAuth
	FieldHTTPS
	FieldCORS
	FieldLink

	// FieldCount is the number of cells a well-formed row carries.
	FieldCount
)

// Document is a parsed directory listing.
type Document struct {
	// Path is the source file path, if any.
	Path string

	// Lines holds the raw lines with trailing whitespace removed.
	Lines []string

	// Preamble holds rows that appear before the first section header.
	Preamble []*Row

	// Sections holds the sections in document order.
	Sections []*Section
}

// Section is a named group of rows under one header line.
type Section struct {
	// Name is the token following the anchor.
	Name string

	// Header is the raw header line.
	Header string

	// Line is the 1-based line number of the header.
	Line int

	// Rows holds the section's rows in document order.
	Rows []*Row
}

// Titles returns the trimmed title of every row in document order.
func (s *Section) Titles() []string {
	titles := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		title, _ := row.Cell(FieldTitle)
		titles = append(titles, title)
	}
	return titles
}

// Row is one table line.
type Row struct {
	// Line is the 1-based line number of the row.
	Line int

	// Raw is the full line text.
	Raw string

	// Segments holds the untrimmed text between delimiters, excluding
	// whatever precedes the first delimiter and follows the last one.
	Segments []string

	// Cells holds Segments with surrounding whitespace removed.
	Cells []string
}

// Cell returns the trimmed cell at index i and whether it exists.
func (r *Row) Cell(i int) (string, bool) {
	if i < 0 || i >= len(r.Cells) {
		return "", false
	}
	return r.Cells[i], true
}

// Parse builds a Document from raw file content.
func Parse(path string, content []byte, anchor string) *Document {
	return ParseLines(path, SplitLines(content), anchor)
}

// ParseLines builds a Document from pre-split lines.
func ParseLines(path string, lines []string, anchor string) *Document {
	doc := &Document{
		Path:  path,
		Lines: lines,
	}

	var current *Section
	for idx, line := range lines {
		lineNum := idx + 1

		switch {
		case IsHeader(line, anchor):
			current = &Section{
				Name:   SectionName(line, anchor),
				Header: line,
				Line:   lineNum,
			}
			doc.Sections = append(doc.Sections, current)

		case IsSeparator(line):
			continue

		case IsRow(line):
			row := ParseRow(lineNum, line)
			if current == nil {
				doc.Preamble = append(doc.Preamble, row)
			} else {
				current.Rows = append(current.Rows, row)
			}
		}
	}

	return doc
}

// IsHeader reports whether line opens a section.
func IsHeader(line, anchor string) bool {
	return anchor != "" && strings.HasPrefix(line, anchor)
}

// IsSeparator reports whether line is a table separator row.
func IsSeparator(line string) bool {
	return strings.HasPrefix(line, SeparatorPrefix)
}

// IsRow reports whether line is a table data row.
func IsRow(line string) bool {
	return strings.HasPrefix(line, Delimiter) && !IsSeparator(line)
}

// SectionName returns the section name of a header line: the second
// whitespace-delimited token of the line, or the text glued to the anchor
// when the line holds a single token.
func SectionName(line, anchor string) string {
	fields := strings.Fields(line)
	if len(fields) >= 2 {
		return fields[1]
	}
	return strings.TrimSpace(strings.TrimPrefix(line, anchor))
}

// ParseRow splits a table line into segments and trimmed cells.
func ParseRow(lineNum int, line string) *Row {
	parts := strings.Split(line, Delimiter)

	var segments []string
	if len(parts) > 2 {
		segments = parts[1 : len(parts)-1]
	}

	cells := make([]string, len(segments))
	for i, seg := range segments {
		cells[i] = strings.TrimSpace(seg)
	}

	return &Row{
		Line:     lineNum,
		Raw:      line,
		Segments: segments,
		Cells:    cells,
	}
}

// RowCount returns the number of rows across all sections and the preamble.
func (d *Document) RowCount() int {
	count := len(d.Preamble)
	for _, sec := range d.Sections {
		count += len(sec.Rows)
	}
	return count
}
