package corpus

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading found in a document.
type Heading struct {
	Level int
	Text  string
}

// Outline lists the headings of a document in source order.
func Outline(doc Document) []Heading {
	source := []byte(doc.Raw)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []Heading
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Text:
				sb.Write(c.Segment.Value(source))
			case *ast.CodeSpan:
				for g := c.FirstChild(); g != nil; g = g.NextSibling() {
					if t, ok := g.(*ast.Text); ok {
						sb.Write(t.Segment.Value(source))
					}
				}
			}
		}

		if txt := strings.TrimSpace(sb.String()); txt != "" {
			headings = append(headings, Heading{Level: heading.Level, Text: txt})
		}
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// Title returns the first level-1 heading, or the document name when the
// document has none.
func Title(doc Document) string {
	for _, h := range Outline(doc) {
		if h.Level == 1 {
			return h.Text
		}
	}
	return doc.Name
}
