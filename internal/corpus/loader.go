package corpus

import (
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Options controls which documents a Loader enumerates.
type Options struct {
	Include []string     // Glob patterns; only matching names are enumerated.
	Exclude []string     // Glob patterns; matching names are skipped.
	Logger  *slog.Logger // Defaults to slog.Default().
}

// Loader enumerates and reads documents from the top level of an fs.FS.
// It holds no mutable state and is safe for concurrent use.
type Loader struct {
	fsys    fs.FS
	root    string
	include []string
	exclude []string
	logger  *slog.Logger
}

// NewLoader returns a Loader over fsys. root is only used to build the
// paths reported for missing documents.
func NewLoader(fsys fs.FS, root string, opts Options) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fsys:    fsys,
		root:    root,
		include: opts.Include,
		exclude: opts.Exclude,
		logger:  logger,
	}
}

// NewDirLoader returns a Loader for a directory on disk. The directory does
// not need to exist; a missing directory yields an empty corpus.
func NewDirLoader(dir string, opts Options) *Loader {
	return NewLoader(os.DirFS(dir), dir, opts)
}

// Root returns the display root of the corpus.
func (l *Loader) Root() string { return l.root }

// Names returns the eligible document names in traversal order
// (lexicographic by name). It lists the directory but reads no content.
func (l *Loader) Names() []string {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		l.logger.Debug("corpus: cannot list root", "root", l.root, "err", err)
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !matchesInclude(name, l.include) || matchesExclude(name, l.exclude) {
			continue
		}
		names = append(names, name)
	}
	// fs.ReadDir already sorts, but traversal order is observable under
	// early termination so it is pinned here.
	sort.Strings(names)
	return names
}

// Enumerate returns the corpus as a lazy sequence. Each document is read
// when the consumer pulls it; if the consumer stops early, later documents
// are never opened. Unreadable documents are logged and skipped.
func (l *Loader) Enumerate() iter.Seq[Document] {
	return func(yield func(Document) bool) {
		for _, name := range l.Names() {
			data, err := fs.ReadFile(l.fsys, name)
			if err != nil {
				l.logger.Warn("corpus: skipping unreadable document", "name", name, "err", err)
				continue
			}
			if !yield(NewDocument(name, string(data))) {
				return
			}
		}
	}
}

// FetchNamed reads one document by exact name. Include and exclude patterns
// do not apply. Any failure to read is reported as not found.
func (l *Loader) FetchNamed(name string) Lookup {
	path := l.path(name)
	if !fs.ValidPath(name) || name == "." {
		return NotFound(name, path)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		l.logger.Debug("corpus: document not found", "name", name, "err", err)
		return NotFound(name, path)
	}
	return Found(name, path, string(data))
}

// FetchPrimaryOrFallback reads primary, or fallback if primary is missing.
// When both are missing the result names the fallback's path.
func (l *Loader) FetchPrimaryOrFallback(primary, fallback string) Lookup {
	return l.FetchNamed(primary).Or(func() Lookup {
		return l.FetchNamed(fallback)
	})
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.root, filepath.FromSlash(name))
}
