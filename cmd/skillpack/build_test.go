package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillpack/skillpack"
	main "github.com/skillpack/skillpack/cmd/skillpack"
	"github.com/skillpack/skillpack/crawl"
	"github.com/skillpack/skillpack/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBuildDeps wires a build pipeline over mocks: two pages behind a
// sitemap, an in-memory store, and no rate limiting.
func newBuildDeps(cfg skillpack.Config) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	sitemaps := &mock.SitemapService{
		DiscoverURLsFn: func(_ context.Context, _ string, _ *skillpack.URLFilter) ([]string, error) {
			return []string{
				"https://example.com/docs/page1",
				"https://example.com/docs/page2",
			}, nil
		},
	}

	runner := &crawl.Runner{
		Config:   cfg,
		Sitemaps: sitemaps,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><h1>Guide</h1><p>Test content</p></body></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string) (*skillpack.ExtractResult, error) {
				return &skillpack.ExtractResult{
					Title:       "Guide",
					ContentHTML: "<h1>Guide</h1><p>Test content</p>",
					Text:        "Guide Test content",
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "# Guide\n\nTest content", nil
			},
		},
	}

	store := &mock.CorpusStore{
		CreateRunFn: func(_ context.Context, run *skillpack.CorpusRun) error {
			run.ID = "run-123"
			return nil
		},
		SaveRecordsFn: func(_ context.Context, _ string, _ []*skillpack.PageRecord) error {
			return nil
		},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Store:    store,
		Sitemaps: sitemaps,
		Runner:   runner,
	}
	return deps, stdout, stderr
}

func testBuildCmd(out string) *main.BuildCmd {
	return &main.BuildCmd{
		Name:     "testdocs",
		URL:      "https://example.com/docs",
		Out:      out,
		MaxPages: 100,
		Workers:  1,
		Strategy: "auto",
		Target:   5000,
		Budget:   100000,
		Unit:     "chars",
	}
}

func testBuildConfig() skillpack.Config {
	return skillpack.Config{
		MaxPages:              100,
		TargetPagesPerPackage: 5000,
		Strategy:              skillpack.SplitStrategy("auto"),
		ChunkSizeBudget:       100000,
		ChunkSizeUnit:         skillpack.UnitChars,
		ParallelWorkers:       1,
	}
}

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("ingests, persists, and writes a skill package", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		deps, stdout, _ := newBuildDeps(testBuildConfig())

		err := testBuildCmd(out).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Stored run run-123 (2 pages, 0 failed)")
		assert.Contains(t, output, "Wrote")

		manifest, err := os.ReadFile(filepath.Join(out, "testdocs", "skill.json"))
		require.NoError(t, err)
		assert.Contains(t, string(manifest), `"name": "testdocs"`)

		entries, err := os.ReadDir(filepath.Join(out, "testdocs", "chunks"))
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		chunk, err := os.ReadFile(filepath.Join(out, "testdocs", "chunks", entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(chunk), "<!-- source: https://example.com/docs/page1 -->")
		assert.Contains(t, string(chunk), "# Guide")
	})

	t.Run("dry run plans without writing packages", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		deps, stdout, _ := newBuildDeps(testBuildConfig())

		cmd := testBuildCmd(out)
		cmd.DryRun = true

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "strategy: none")

		entries, err := os.ReadDir(out)
		require.NoError(t, err)
		assert.Empty(t, entries, "dry run should not write packages")
	})

	t.Run("attaches generated descriptions to the manifest", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		deps, _, _ := newBuildDeps(testBuildConfig())
		deps.Describer = &mock.Describer{
			DescribeFn: func(_ context.Context, _ *skillpack.Skill) (string, error) {
				return "Reference for the example docs site.", nil
			},
		}

		err := testBuildCmd(out).Run(deps)

		require.NoError(t, err)
		manifest, err := os.ReadFile(filepath.Join(out, "testdocs", "skill.json"))
		require.NoError(t, err)
		assert.Contains(t, string(manifest), "Reference for the example docs site.")
	})

	t.Run("describe failure warns but still writes the package", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		deps, _, stderr := newBuildDeps(testBuildConfig())
		deps.Describer = &mock.Describer{
			DescribeFn: func(_ context.Context, _ *skillpack.Skill) (string, error) {
				return "", skillpack.Errorf(skillpack.ETRANSPORT, "model unavailable")
			},
		}

		err := testBuildCmd(out).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: describe testdocs")

		_, statErr := os.Stat(filepath.Join(out, "testdocs", "skill.json"))
		require.NoError(t, statErr)
	})

	t.Run("rejects an invalid filter pattern", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newBuildDeps(testBuildConfig())

		cmd := testBuildCmd(t.TempDir())
		cmd.Filter = []string{"[invalid"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "[invalid")
	})

	t.Run("rejects an invalid configuration", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newBuildDeps(testBuildConfig())

		cmd := testBuildCmd(t.TempDir())
		cmd.MaxPages = 0

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
