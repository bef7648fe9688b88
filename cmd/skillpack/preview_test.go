package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/skillpack/skillpack"
	main "github.com/skillpack/skillpack/cmd/skillpack"
	"github.com/skillpack/skillpack/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists discovered URLs with a count", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *skillpack.URLFilter) ([]string, error) {
				return []string{
					"https://example.com/docs/page1",
					"https://example.com/docs/page2",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Sitemaps: sitemaps,
		}

		cmd := &main.PreviewCmd{URL: "https://example.com/docs"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "https://example.com/docs/page1")
		assert.Contains(t, output, "https://example.com/docs/page2")
		assert.Contains(t, output, "2 URLs")
	})

	t.Run("passes the compiled filter to discovery", func(t *testing.T) {
		t.Parallel()

		var gotFilter *skillpack.URLFilter
		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, filter *skillpack.URLFilter) ([]string, error) {
				gotFilter = filter
				return []string{"https://example.com/docs/api"}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Sitemaps: sitemaps,
		}

		cmd := &main.PreviewCmd{
			URL:    "https://example.com/docs",
			Filter: []string{"/api/"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter)
		assert.Len(t, gotFilter.Include, 1)
	})

	t.Run("explains the crawl fallback when no URLs are found", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *skillpack.URLFilter) ([]string, error) {
				return []string{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Sitemaps: sitemaps,
		}

		cmd := &main.PreviewCmd{URL: "https://example.com/docs"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No URLs found")
	})

	t.Run("rejects an invalid filter pattern", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.PreviewCmd{
			URL:    "https://example.com/docs",
			Filter: []string{"[invalid"},
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "[invalid")
	})

	t.Run("returns error when discovery fails", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *skillpack.URLFilter) ([]string, error) {
				return nil, skillpack.Errorf(skillpack.ETRANSPORT, "connection refused")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Sitemaps: sitemaps,
		}

		cmd := &main.PreviewCmd{URL: "https://example.com/docs"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
