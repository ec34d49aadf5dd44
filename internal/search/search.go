// Package search implements keyword search over the reference corpus.
//
// A query is tokenized into keywords, the corpus is walked in name order,
// each document contributes at most one match, and the walk stops as soon
// as enough matches are collected.
package search

import (
	"iter"
	"log/slog"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
)

// Corpus supplies documents in traversal order.
type Corpus interface {
	Enumerate() iter.Seq[corpus.Document]
}

// Options bounds result counts and snippet size.
type Options struct {
	DefaultResults int
	MaxResults     int
	Window         Window
	Logger         *slog.Logger
}

// DefaultOptions mirrors the documented 1-5 range with 3 results by default.
func DefaultOptions() Options {
	return Options{DefaultResults: 3, MaxResults: 5, Window: DefaultWindow}
}

// Searcher runs queries against a Corpus.
type Searcher struct {
	corpus Corpus
	opts   Options
	logger *slog.Logger
}

// NewSearcher returns a Searcher. Zero-valued limits and a zero Window
// fall back to DefaultOptions.
func NewSearcher(c Corpus, opts Options) *Searcher {
	def := DefaultOptions()
	if opts.MaxResults < 1 {
		opts.MaxResults = def.MaxResults
	}
	if opts.DefaultResults < 1 {
		opts.DefaultResults = min(def.DefaultResults, opts.MaxResults)
	}
	if opts.Window == (Window{}) {
		opts.Window = def.Window
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{corpus: c, opts: opts, logger: logger}
}

// DefaultResults is the limit used when a caller does not ask for one.
func (s *Searcher) DefaultResults() int { return s.opts.DefaultResults }

// MaxResults is the largest limit a caller can get.
func (s *Searcher) MaxResults() int { return s.opts.MaxResults }

// ClampLimit forces a requested limit into [1, MaxResults].
func (s *Searcher) ClampLimit(n int) int {
	return min(max(n, 1), s.opts.MaxResults)
}

// Search runs query with the requested limit, clamped to [1, MaxResults].
func (s *Searcher) Search(query string, limit int) Result {
	limit = s.ClampLimit(limit)
	q := Tokenize(query)

	matches := MatchDocuments(s.corpus.Enumerate(), q.Keywords, limit, s.opts.Window)
	res := Assemble(matches, limit, query)

	s.logger.Debug("search", "query", query, "keywords", q.Keywords, "limit", limit, "results", len(res.Entries))
	return res
}
