package search

import "strings"

// Window is the number of lines kept around a matched line.
type Window struct {
	Before int // Lines before the match.
	After  int // Lines from the match onward, the match included.
}

// DefaultWindow keeps two lines of lead-in and twenty lines of context.
var DefaultWindow = Window{Before: 2, After: 20}

// Extract returns lines [i-Before, i+After) of lines, clipped to the
// document boundaries, joined with newlines.
func Extract(lines []string, i int, w Window) string {
	start := max(0, i-w.Before)
	end := min(len(lines), i+w.After)
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}
