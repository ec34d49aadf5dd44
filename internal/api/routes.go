// Package api exposes the search and reference operations as plain JSON
// endpoints alongside the MCP transport.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
	"github.com/ziadkadry99/symbols-mcp/internal/reference"
	"github.com/ziadkadry99/symbols-mcp/internal/search"
)

// Deps are the services the API reads from.
type Deps struct {
	Loader        *corpus.Loader
	Searcher      *search.Searcher
	PrimaryRules  string
	FallbackRules string
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []search.Entry `json:"results"`
	Message string         `json:"message,omitempty"`
}

// ResourceInfo describes one reference resource.
type ResourceInfo struct {
	URI         string `json:"uri"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mime_type"`
}

// RegisterRoutes mounts the API endpoints under /api on the given router.
func RegisterRoutes(r chi.Router, deps Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", handleSearch(deps.Searcher))
		r.Get("/rules", handleRules(deps))
		r.Get("/resources", handleListResources())
		r.Get("/resources/{slug}", handleGetResource(deps.Loader))
	})
}

func handleSearch(searcher *search.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if !q.Has("q") {
			http.Error(w, "missing required parameter: q", http.StatusBadRequest)
			return
		}
		query := q.Get("q")

		limit := searcher.DefaultResults()
		if v := q.Get("max_results"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "max_results must be an integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		res := searcher.Search(query, limit)
		resp := SearchResponse{Query: query, Results: res.Entries}
		if resp.Results == nil {
			resp.Results = []search.Entry{}
		}
		if res.Empty() {
			resp.Message = search.NoResultsMessage(query)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleRules(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules := deps.Loader.FetchPrimaryOrFallback(deps.PrimaryRules, deps.FallbackRules)
		status := http.StatusOK
		if !rules.Found {
			status = http.StatusNotFound
		}
		writeMarkdown(w, status, rules.String())
	}
}

func handleListResources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos := make([]ResourceInfo, 0, len(reference.Catalog))
		for _, res := range reference.Catalog {
			infos = append(infos, ResourceInfo{
				URI:         res.URI,
				Slug:        res.Slug(),
				Name:        res.Name,
				Description: res.Description,
				MIMEType:    reference.MIMEType,
			})
		}
		writeJSON(w, http.StatusOK, infos)
	}
}

func handleGetResource(loader *corpus.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		res, ok := reference.Find(slug)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		writeMarkdown(w, http.StatusOK, res.Content(loader))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeMarkdown(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", reference.MIMEType+"; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}
