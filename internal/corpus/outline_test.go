package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutline(t *testing.T) {
	doc := NewDocument("CLAUDE.md", "# DOMQL v3 Reference\n\nIntro.\n\n## Components\n\ntext\n\n### The `extends` key\n")

	got := Outline(doc)
	assert.Equal(t, []Heading{
		{Level: 1, Text: "DOMQL v3 Reference"},
		{Level: 2, Text: "Components"},
		{Level: 3, Text: "The extends key"},
	}, got)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Quickstart", Title(NewDocument("QUICKSTART.md", "intro\n# Quickstart\n")))
	assert.Equal(t, "notes.md", Title(NewDocument("notes.md", "## only a subsection\n")))
	assert.Equal(t, "empty.md", Title(NewDocument("empty.md", "")))
}

func TestLookupOr(t *testing.T) {
	calls := 0
	next := func() Lookup {
		calls++
		return Found("b", "root/b", "fallback")
	}

	assert.Equal(t, "primary", Found("a", "root/a", "primary").Or(next).String())
	assert.Equal(t, 0, calls)

	assert.Equal(t, "fallback", NotFound("a", "root/a").Or(next).String())
	assert.Equal(t, 1, calls)
}
