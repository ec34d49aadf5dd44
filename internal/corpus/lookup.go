package corpus

import "fmt"

// Lookup is the outcome of reading a named document. A missing document is
// a normal outcome, not an error: callers render it with String.
type Lookup struct {
	Name  string
	Path  string
	Text  string
	Found bool
}

// Found returns a successful lookup.
func Found(name, path, text string) Lookup {
	return Lookup{Name: name, Path: path, Text: text, Found: true}
}

// NotFound returns a lookup for a document that does not exist at path.
func NotFound(name, path string) Lookup {
	return Lookup{Name: name, Path: path}
}

// Or returns l if it was found, otherwise the result of next.
func (l Lookup) Or(next func() Lookup) Lookup {
	if l.Found {
		return l
	}
	return next()
}

// String returns the document text, or a not-found message naming the
// path that was tried.
func (l Lookup) String() string {
	if l.Found {
		return l.Text
	}
	return fmt.Sprintf("Skill file '%s' not found at %s", l.Name, l.Path)
}
