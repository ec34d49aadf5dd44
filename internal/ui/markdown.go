// Package ui renders markdown for terminal display.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the word-wrap width used when none is given.
const DefaultTermWidth = 100

// StdoutIsTerminal reports whether stdout is an interactive terminal.
var StdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// RenderMarkdown renders markdown content with the given glamour style
// (styles.DarkStyle, styles.NoTTYStyle, ...).
func RenderMarkdown(content, style string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// WriteMarkdown writes content to w, styled when stdout is a terminal and
// raw is false. Rendering failures fall back to the raw text.
func WriteMarkdown(w io.Writer, content string, raw bool) error {
	if !raw && StdoutIsTerminal() {
		if rendered, err := RenderMarkdown(content, styles.DarkStyle, DefaultTermWidth); err == nil {
			_, err = io.WriteString(w, rendered)
			return err
		}
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := io.WriteString(w, content)
	return err
}
