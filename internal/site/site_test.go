package site

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
	"github.com/ziadkadry99/symbols-mcp/internal/reference"
)

func TestRenderPage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	md := "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```js\nexport const Box = { extends: 'Flex' }\n```\n"
	page, err := renderer.RenderPage("Title", md, []NavItem{{Title: "One", Href: "/docs/one", Active: true}})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `<h1 id="title">Title</h1>`)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, `class="active"`)
	assert.Contains(t, html, "<title>Title · Symbols</title>")
	// Highlighted code blocks carry inline styles instead of a language class.
	assert.NotContains(t, html, `class="language-js"`)
}

func TestRawHTMLIsEscaped(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	res, ok := reference.Find("atom-components")
	require.True(t, ok)

	out, err := renderer.HTML(res.Text)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "&lt;input&gt;")
	assert.Contains(t, html, "&lt;span&gt;")
	assert.NotContains(t, html, "<input>")
	assert.NotContains(t, html, "<span>")
	assert.NotContains(t, html, "raw HTML omitted")

	block, err := renderer.HTML("<div class=\"x\">hi</div>\n")
	require.NoError(t, err)
	assert.Contains(t, string(block), "&lt;div class=&quot;x&quot;&gt;hi&lt;/div&gt;")
	assert.NotContains(t, string(block), "<div")
}

func TestRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "QUICKSTART.md"), []byte("# Quickstart\n\nRun it."), 0644))

	renderer, err := NewRenderer()
	require.NoError(t, err)
	r := chi.NewRouter()
	RegisterRoutes(r, renderer, corpus.NewDirLoader(dir, corpus.Options{Include: []string{"*.md"}}))

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/docs/", http.StatusOK, "Symbols Reference"},
		{"/docs/quickstart", http.StatusOK, "Run it."},
		{"/docs/spacing-tokens", http.StatusOK, "Symbols Spacing Tokens"},
		{"/docs/atom-components", http.StatusOK, "&lt;input&gt;"},
		{"/docs/design-direction", http.StatusOK, "not found at"},
		{"/docs/nope", http.StatusNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
