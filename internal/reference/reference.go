// Package reference declares the read-only documents exposed as MCP
// resources: skill files read through the corpus loader, and inline tables
// compiled into the binary.
package reference

import (
	"path"
	"strings"

	"github.com/ziadkadry99/symbols-mcp/internal/corpus"
)

// MIMEType is the content type of every resource.
const MIMEType = "text/markdown"

// Resource is one named, read-only document.
type Resource struct {
	URI         string
	Name        string
	Description string
	File        string // Skill file name; empty for inline resources.
	Text        string // Inline content; used when File is empty.
}

// Slug is the last path segment of the URI, e.g. "quickstart".
func (r Resource) Slug() string { return path.Base(r.URI) }

// Inline reports whether the content is compiled in rather than read.
func (r Resource) Inline() bool { return r.File == "" }

// Fetcher reads skill files by name.
type Fetcher interface {
	FetchNamed(name string) corpus.Lookup
}

// Content returns the resource text. File-backed resources that are
// missing render as the loader's not-found message.
func (r Resource) Content(f Fetcher) string {
	if r.Inline() {
		return r.Text
	}
	return f.FetchNamed(r.File).String()
}

// Catalog lists every resource in the order they are advertised.
var Catalog = []Resource{
	{
		URI:         "symbols://skills/domql-v3-reference",
		Name:        "DOMQL v3 Reference",
		Description: "Complete DOMQL v3 syntax reference and rules.",
		File:        "CLAUDE.md",
	},
	{
		URI:         "symbols://skills/project-structure",
		Name:        "Project Structure",
		Description: "Symbols project folder structure and file conventions.",
		File:        "SYMBOLS_LOCAL_INSTRUCTIONS.md",
	},
	{
		URI:         "symbols://skills/design-direction",
		Name:        "Design Direction",
		Description: "Modern UI/UX design direction for generating Symbols interfaces.",
		File:        "DESIGN_DIRECTION.md",
	},
	{
		URI:         "symbols://skills/migration-guide",
		Name:        "Migration Guide",
		Description: "Guide for migrating React/Angular/Vue apps to Symbols/DOMQL v3.",
		File:        "MIGRATE_TO_SYMBOLS.md",
	},
	{
		URI:         "symbols://skills/v2-to-v3-migration",
		Name:        "DOMQL v2 to v3 Migration",
		Description: "DOMQL v2 to v3 migration changes and examples.",
		File:        "DOMQL_v2-v3_MIGRATION.md",
	},
	{
		URI:         "symbols://skills/quickstart",
		Name:        "Quickstart",
		Description: "Symbols CLI setup and usage quickstart guide.",
		File:        "QUICKSTART.md",
	},
	{
		URI:         "symbols://reference/spacing-tokens",
		Name:        "Spacing Tokens",
		Description: "Spacing token reference for the Symbols design system.",
		Text:        spacingTokens,
	},
	{
		URI:         "symbols://reference/atom-components",
		Name:        "Atom Components",
		Description: "Built-in primitive atom components in Symbols.",
		Text:        atomComponents,
	},
	{
		URI:         "symbols://reference/event-handlers",
		Name:        "Event Handlers",
		Description: "Event handler reference for Symbols/DOMQL v3.",
		Text:        eventHandlers,
	},
}

// Find looks a resource up by full URI or by slug.
func Find(key string) (Resource, bool) {
	key = strings.TrimSpace(key)
	for _, r := range Catalog {
		if r.URI == key || r.Slug() == key {
			return r, true
		}
	}
	return Resource{}, false
}
