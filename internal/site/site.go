// Package site renders the reference resources as browsable HTML pages.
package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Page is the data passed to the page template.
type Page struct {
	Title   string
	Content template.HTML
	Nav     []NavItem
}

// NavItem is one sidebar link.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// Renderer converts markdown into full HTML pages.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer creates a Renderer with GFM tables and highlighted code blocks.
// Raw HTML in the source is shown escaped; the reference tables name tags
// like <input> as text.
func NewRenderer() (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(
				util.Prioritized(&escapedHTMLRenderer{}, 100),
			),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Renderer{md: md, tmpl: tmpl}, nil
}

// HTML converts markdown to an HTML fragment.
func (r *Renderer) HTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPage renders markdown inside the page layout.
func (r *Renderer) RenderPage(title, markdown string, nav []NavItem) ([]byte, error) {
	content, err := r.HTML(markdown)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, Page{Title: title, Content: content, Nav: nav}); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return out.Bytes(), nil
}
