package search

import (
	"strings"
	"unicode/utf8"
)

// minKeywordLen is the shortest token kept as a keyword. Shorter tokens
// ("a", "of", "js") are noise for substring matching.
const minKeywordLen = 3

// Query is a raw query and the keywords derived from it.
type Query struct {
	Raw      string
	Keywords []string
}

// Tokenize lower-cases raw, splits it on whitespace and keeps distinct
// tokens of at least minKeywordLen runes. If nothing survives, the whole
// lower-cased query is the only keyword, so Tokenize("") yields [""].
func Tokenize(raw string) Query {
	lowered := strings.ToLower(raw)

	seen := make(map[string]bool)
	var keywords []string
	for _, tok := range strings.Fields(lowered) {
		if utf8.RuneCountInString(tok) < minKeywordLen || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}

	if len(keywords) == 0 {
		keywords = []string{lowered}
	}
	return Query{Raw: raw, Keywords: keywords}
}

// containsAny reports whether s contains any keyword as a substring.
// s must already be lower-cased.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
