package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
	"github.com/ziadkadry99/symbols-mcp/internal/reference"
)

// RegisterRoutes mounts the HTML reading view under /docs.
func RegisterRoutes(r chi.Router, renderer *Renderer, loader *corpus.Loader) {
	r.Route("/docs", func(r chi.Router) {
		r.Get("/", handleIndex(renderer))
		r.Get("/{slug}", handlePage(renderer, loader))
	})
}

func navFor(active string) []NavItem {
	nav := make([]NavItem, 0, len(reference.Catalog))
	for _, res := range reference.Catalog {
		nav = append(nav, NavItem{
			Title:  res.Name,
			Href:   "/docs/" + res.Slug(),
			Active: res.Slug() == active,
		})
	}
	return nav
}

func handleIndex(renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		md := "# Symbols Reference\n\n"
		for _, res := range reference.Catalog {
			md += "- [" + res.Name + "](/docs/" + res.Slug() + ") " + res.Description + "\n"
		}
		writePage(w, renderer, "Symbols Reference", md, navFor(""))
	}
}

func handlePage(renderer *Renderer, loader *corpus.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		res, ok := reference.Find(slug)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		writePage(w, renderer, res.Name, res.Content(loader), navFor(slug))
	}
}

func writePage(w http.ResponseWriter, renderer *Renderer, title, markdown string, nav []NavItem) {
	page, err := renderer.RenderPage(title, markdown, nav)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}
