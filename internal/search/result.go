package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is one search hit as returned to callers.
type Entry struct {
	File    string `json:"file"`
	Snippet string `json:"snippet"`
}

// Result is the assembled answer to a query.
type Result struct {
	Query   string
	Entries []Entry
}

// Assemble converts matches into a Result holding at most limit entries.
func Assemble(matches []Match, limit int, query string) Result {
	if limit < 0 {
		limit = 0
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	res := Result{Query: query}
	for _, m := range matches {
		res.Entries = append(res.Entries, Entry{File: m.Document.Name, Snippet: m.Snippet})
	}
	return res
}

// Empty reports whether the result has no entries.
func (r Result) Empty() bool { return len(r.Entries) == 0 }

// NoResultsMessage is returned instead of a JSON list when nothing matched.
func NoResultsMessage(query string) string {
	return fmt.Sprintf("No results found for '%s'. Try a different search term.", query)
}

// String renders the entries as an indented JSON array, or the no-results
// message when there are none.
func (r Result) String() string {
	if r.Empty() {
		return NoResultsMessage(r.Query)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Entries); err != nil {
		// Entries hold only strings; encoding cannot fail.
		return NoResultsMessage(r.Query)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
