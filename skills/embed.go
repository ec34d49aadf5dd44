// Package skills bundles the default Symbols reference corpus into the
// binary. It is served when no skills directory is configured.
package skills

import "embed"

// FS holds the bundled markdown documents at its root.
//
//go:embed *.md
var FS embed.FS

// Root is the display path used in not-found messages for bundled documents.
const Root = "bundled:skills"
