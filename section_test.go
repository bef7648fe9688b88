package skillpack_test

import (
	"testing"

	"github.com/skillpack/skillpack"
	"github.com/stretchr/testify/assert"
)

func TestExtractSections_returns_headings_in_order(t *testing.T) {
	t.Parallel()

	markdown := `# Getting Started

Some intro text.

## Installation

### Requirements

## Configuration
`

	sections := skillpack.ExtractSections(markdown)
	assert.Len(t, sections, 4)
	assert.Equal(t, skillpack.Section{Level: 1, Title: "Getting Started"}, sections[0])
	assert.Equal(t, skillpack.Section{Level: 2, Title: "Installation"}, sections[1])
	assert.Equal(t, skillpack.Section{Level: 3, Title: "Requirements"}, sections[2])
	assert.Equal(t, skillpack.Section{Level: 2, Title: "Configuration"}, sections[3])
}

func TestExtractSections_skips_headings_inside_code_blocks(t *testing.T) {
	t.Parallel()

	markdown := "# Real Heading\n\n```bash\n# this is a comment, not a heading\n```\n"

	sections := skillpack.ExtractSections(markdown)
	assert.Len(t, sections, 1)
	assert.Equal(t, "Real Heading", sections[0].Title)
}

func TestExtractSections_empty_markdown_returns_nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, skillpack.ExtractSections(""))
	assert.Nil(t, skillpack.ExtractSections("no headings here"))
}

func TestNearestAncestor_prefers_highest_level_heading(t *testing.T) {
	t.Parallel()

	sections := []skillpack.Section{
		{Level: 3, Title: "Deep"},
		{Level: 1, Title: "Top"},
		{Level: 2, Title: "Middle"},
	}

	title, ok := skillpack.NearestAncestor(sections)
	assert.True(t, ok)
	assert.Equal(t, "Top", title)
}

func TestNearestAncestor_empty_sections(t *testing.T) {
	t.Parallel()

	_, ok := skillpack.NearestAncestor(nil)
	assert.False(t, ok)
}
