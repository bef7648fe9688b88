package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and creation time", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)

		run := &skillpack.CorpusRun{
			SourceURL: "https://example.com/docs",
			Strategy:  "auto",
			Report:    skillpack.RunReport{Discovered: 10, Extracted: 9, Failed: 1},
		}
		err := s.CreateRun(context.Background(), run)

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.CreatedAt.IsZero())
	})

	t.Run("rejects run without source URL", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)

		err := s.CreateRun(context.Background(), &skillpack.CorpusRun{})
		require.Error(t, err)
		assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("roundtrips report including failures", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &skillpack.CorpusRun{
			SourceURL: "https://example.com/docs",
			Report: skillpack.RunReport{
				Discovered: 2,
				Extracted:  1,
				Failed:     1,
				Failures: []skillpack.PageFailure{
					{Identity: "https://example.com/docs/broken", Stage: "fetch", Reason: "HTTP 404"},
				},
			},
		}
		require.NoError(t, s.CreateRun(ctx, run))

		got, err := s.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.SourceURL, got.SourceURL)
		assert.Equal(t, run.Report, got.Report)
	})

	t.Run("unknown ID returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)

		_, err := s.FindRunByID(context.Background(), "does-not-exist")
		require.Error(t, err)
		assert.Equal(t, skillpack.ENOTFOUND, skillpack.ErrorCode(err))
	})
}

func TestRunService_SaveRecords_and_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("roundtrips records in discovery order", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &skillpack.CorpusRun{SourceURL: "https://example.com/docs"}
		require.NoError(t, s.CreateRun(ctx, run))

		records := []*skillpack.PageRecord{
			{
				Identity:     "https://example.com/docs/intro",
				Title:        "Introduction",
				Markdown:     "# Introduction\n\nwelcome",
				Category:     "guides",
				Language:     "en",
				DiscoveredAt: 0,
				Headings:     []skillpack.Section{{Level: 1, Title: "Introduction"}},
				CodeBlocks: []skillpack.CodeBlock{
					{Text: "x := 1", Method: skillpack.DetectIndentation, Language: "go", Confidence: 0.8, Quality: 7},
				},
				Images: []skillpack.ImageRef{{URL: "https://example.com/img/a.png", Width: 640}},
			},
			{
				Identity:     "https://example.com/docs/broken",
				DiscoveredAt: 1,
				Failed:       true,
				Diagnostic:   "extract: empty HTML input",
			},
		}
		require.NoError(t, s.SaveRecords(ctx, run.ID, records))

		got, err := s.FindRecords(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, records[0].Identity, got[0].Identity)
		assert.Equal(t, records[0].CodeBlocks, got[0].CodeBlocks)
		assert.Equal(t, records[0].Images, got[0].Images)
		assert.Equal(t, records[0].Headings, got[0].Headings)
		assert.True(t, got[1].Failed)
		assert.Equal(t, records[1].Diagnostic, got[1].Diagnostic)
	})

	t.Run("order follows discovery ordinal regardless of insert order", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &skillpack.CorpusRun{SourceURL: "https://example.com/docs"}
		require.NoError(t, s.CreateRun(ctx, run))

		var records []*skillpack.PageRecord
		for i := 4; i >= 0; i-- {
			records = append(records, &skillpack.PageRecord{
				Identity:     fmt.Sprintf("https://example.com/docs/p%d", i),
				Markdown:     "body",
				DiscoveredAt: i,
			})
		}
		require.NoError(t, s.SaveRecords(ctx, run.ID, records))

		got, err := s.FindRecords(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, got, 5)
		for i, rec := range got {
			assert.Equal(t, i, rec.DiscoveredAt)
		}
	})

	t.Run("saving against unknown run returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)

		err := s.SaveRecords(context.Background(), "missing", nil)
		require.Error(t, err)
		assert.Equal(t, skillpack.ENOTFOUND, skillpack.ErrorCode(err))
	})
}

func TestRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("removes run and cascades to records", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)
		ctx := context.Background()

		run := &skillpack.CorpusRun{SourceURL: "https://example.com/docs"}
		require.NoError(t, s.CreateRun(ctx, run))
		require.NoError(t, s.SaveRecords(ctx, run.ID, []*skillpack.PageRecord{
			{Identity: "https://example.com/docs/p0", Markdown: "body"},
		}))

		require.NoError(t, s.DeleteRun(ctx, run.ID))

		_, err := s.FindRunByID(ctx, run.ID)
		assert.Equal(t, skillpack.ENOTFOUND, skillpack.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("unknown ID returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewRunService(db)

		err := s.DeleteRun(context.Background(), "missing")
		assert.Equal(t, skillpack.ENOTFOUND, skillpack.ErrorCode(err))
	})
}

func TestRunService_FindRuns_most_recent_first(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	s := sqlite.NewRunService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		run := &skillpack.CorpusRun{SourceURL: fmt.Sprintf("https://example.com/site%d", i)}
		require.NoError(t, s.CreateRun(ctx, run))
	}

	runs, err := s.FindRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}
