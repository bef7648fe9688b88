package goquery_test

import (
	"testing"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts links from TOC elements with TOC priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="toc">
	<a href="/docs/section1">Section 1</a>
	<a href="/docs/section2">Section 2</a>
</div>
</body>
</html>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://example.com/docs/section1", links[0].URL)
		assert.Equal(t, skillpack.PriorityTOC, links[0].Priority)
		assert.Equal(t, "toc", links[0].Source)
	})

	t.Run("extracts links from nav with navigation priority", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/docs/guide">Guide</a></nav>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, skillpack.PriorityNavigation, links[0].Priority)
		assert.Equal(t, "nav", links[0].Source)
	})

	t.Run("deduplicates by URL keeping highest priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<footer><a href="/docs/api">API</a></footer>
<div class="sidebar"><a href="/docs/api">API Reference</a></div>
</body>
</html>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, skillpack.PriorityTOC, links[0].Priority)
		assert.Equal(t, "API Reference", links[0].Text)
	})

	t.Run("filters external hosts and subdomains", func(t *testing.T) {
		t.Parallel()

		html := `<nav>
	<a href="https://other.com/docs">External</a>
	<a href="https://api.example.com/docs">Subdomain</a>
	<a href="/docs/local">Local</a>
</nav>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/local", links[0].URL)
	})

	t.Run("skips non-HTTP and self-referential links", func(t *testing.T) {
		t.Parallel()

		html := `<nav>
	<a href="javascript:void(0)">JS</a>
	<a href="mailto:team@example.com">Mail</a>
	<a href="#section">Anchor</a>
	<a href="/docs/real">Real</a>
</nav>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/real", links[0].URL)
	})

	t.Run("strips fragments for deduplication", func(t *testing.T) {
		t.Parallel()

		html := `<nav>
	<a href="/docs/guide#install">Install</a>
	<a href="/docs/guide#usage">Usage</a>
</nav>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/guide", links[0].URL)
	})

	t.Run("fallback collects anchors under the base path", func(t *testing.T) {
		t.Parallel()

		// No semantic containers at all.
		html := `<div>
	<a href="/docs/one">One</a>
	<a href="/blog/post">Off-path</a>
</div>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/one", links[0].URL)
		assert.Equal(t, skillpack.PriorityFallback, links[0].Priority)
		assert.Equal(t, "fallback", links[0].Source)
	})

	t.Run("fallback never downgrades a semantic match", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/docs/guide">Guide</a></nav>
<div><a href="/docs/guide">Guide again</a></div>`

		s := goquery.NewSelector()
		links, err := s.ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, skillpack.PriorityNavigation, links[0].Priority)
	})

	t.Run("invalid base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewSelector()
		_, err := s.ExtractLinks("<a href='/x'>x</a>", "://bad")

		require.Error(t, err)
		assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
	})
}
