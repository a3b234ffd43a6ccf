package listing

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is an inline Markdown link found in a cell.
type Link struct {
	// Text is the link label, e.g. "Go!".
	Text string

	// Destination is the link target URL.
	Destination string
}

//nolint:gochecknoglobals // Stateless parser shared by all calls.
var inlineMarkdown = goldmark.New()

// ParseLink extracts the first inline link from cell content.
// It returns false when the cell holds no link.
func ParseLink(cell string) (Link, bool) {
	source := []byte(cell)
	doc := inlineMarkdown.Parser().Parse(text.NewReader(source))

	var found *ast.Link
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := node.(*ast.Link); ok {
			found = link
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if found == nil {
		return Link{}, false
	}

	return Link{
		Text:        string(linkLabel(found, source)),
		Destination: string(found.Destination),
	}, true
}

// linkLabel concatenates the text segments beneath a link node.
func linkLabel(link *ast.Link, source []byte) []byte {
	var buf bytes.Buffer
	for child := link.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.Bytes()
}

// LinkOf returns the link held in a row's Link cell.
func (r *Row) LinkOf() (Link, bool) {
	cell, ok := r.Cell(FieldLink)
	if !ok {
		return Link{}, false
	}
	return ParseLink(cell)
}
