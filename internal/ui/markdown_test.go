package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nSome *text* here.", styles.NoTTYStyle, 40)
	require.NoError(t, err)

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestWriteMarkdownNotTerminal(t *testing.T) {
	orig := StdoutIsTerminal
	StdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() { StdoutIsTerminal = orig })

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "# Title", false))
	assert.Equal(t, "# Title\n", buf.String())
}

func TestWriteMarkdownRaw(t *testing.T) {
	orig := StdoutIsTerminal
	StdoutIsTerminal = func() bool { return true }
	t.Cleanup(func() { StdoutIsTerminal = orig })

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "**bold**\n", true))
	assert.Equal(t, "**bold**\n", buf.String())
}
