package search

import (
	"iter"
	"strings"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
)

// Match is the first qualifying line of one document.
type Match struct {
	Document  corpus.Document
	LineIndex int
	Snippet   string
}

// MatchDocuments walks docs in order and returns at most limit matches, one
// per document. A document is skipped unless its lower-cased text contains
// a keyword; otherwise its first line containing a keyword is the match.
// The sequence is not pulled again once limit matches exist, so later
// documents are never read. There is no ranking beyond traversal order.
func MatchDocuments(docs iter.Seq[corpus.Document], keywords []string, limit int, w Window) []Match {
	if limit <= 0 {
		return nil
	}

	var matches []Match
	for doc := range docs {
		if !containsAny(strings.ToLower(doc.Raw), keywords) {
			continue
		}

		i := firstMatchingLine(doc.Lines, keywords)
		if i < 0 {
			continue
		}

		matches = append(matches, Match{
			Document:  doc,
			LineIndex: i,
			Snippet:   Extract(doc.Lines, i, w),
		})
		if len(matches) >= limit {
			break
		}
	}
	return matches
}

func firstMatchingLine(lines []string, keywords []string) int {
	for i, line := range lines {
		if containsAny(strings.ToLower(line), keywords) {
			return i
		}
	}
	return -1
}
