package corpus

import (
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// matchesInclude returns true if name matches any of the include patterns.
// If patterns is empty, everything is included.
func matchesInclude(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(name, patterns)
}

// matchesExclude returns true if name matches any of the exclude patterns.
// If patterns is empty, nothing is excluded.
func matchesExclude(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(name, patterns)
}

// matchesAny checks name against doublestar glob patterns, trying both the
// full slash path and its base name.
func matchesAny(name string, patterns []string) bool {
	base := path.Base(name)
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
