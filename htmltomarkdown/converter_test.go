package htmltomarkdown_test

import (
	"testing"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert_headings_and_paragraphs(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter(false)
	md, err := c.Convert(`<h1>Overview</h1><p>Some <strong>important</strong> text.</p>`)

	require.NoError(t, err)
	assert.Contains(t, md, "# Overview")
	assert.Contains(t, md, "**important**")
}

func TestConverter_Convert_preserves_code_blocks(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter(false)
	md, err := c.Convert(`<pre><code>fmt.Println("hello")</code></pre>`)

	require.NoError(t, err)
	assert.Contains(t, md, "```")
	assert.Contains(t, md, `fmt.Println("hello")`)
}

func TestConverter_Convert_tables_optional(t *testing.T) {
	t.Parallel()

	html := `<table><tr><th>Name</th><th>Type</th></tr><tr><td>timeout</td><td>int</td></tr></table>`

	withTables := htmltomarkdown.NewConverter(true)
	md, err := withTables.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, md, "|")
	assert.Contains(t, md, "timeout")

	withoutTables := htmltomarkdown.NewConverter(false)
	md, err = withoutTables.Convert(html)
	require.NoError(t, err)
	assert.NotContains(t, md, "| ---")
	assert.Contains(t, md, "timeout")
}

func TestConverter_Convert_empty_input(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter(false)
	_, err := c.Convert("   ")

	require.Error(t, err)
	assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
}
