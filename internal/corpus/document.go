// Package corpus reads the reference documents served by symbols-mcp.
//
// Documents are read from an fs.FS on every call; nothing is cached. The
// same loader serves a directory on disk (os.DirFS) and the bundled corpus
// (embed.FS).
package corpus

import "strings"

// Document is one reference file, fully loaded into memory.
type Document struct {
	Name  string   // Base file name, e.g. "CLAUDE.md".
	Raw   string   // Full text.
	Lines []string // Raw split on "\n".
}

// NewDocument splits raw into lines. Line terminators other than "\n" are
// kept as part of the line.
func NewDocument(name, raw string) Document {
	return Document{
		Name:  name,
		Raw:   raw,
		Lines: strings.Split(raw, "\n"),
	}
}
