package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillpack/skillpack"
)

// Compile-time interface verification.
var _ skillpack.CorpusStore = (*RunService)(nil)

// RunService implements skillpack.CorpusStore using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun persists a new run, assigning its ID and creation time.
func (s *RunService) CreateRun(ctx context.Context, run *skillpack.CorpusRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	failures, err := json.Marshal(run.Report.Failures)
	if err != nil {
		return fmt.Errorf("failed to encode failures: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, strategy, discovered, extracted, skipped, failed, failures, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.Strategy, run.Report.Discovered, run.Report.Extracted,
		run.Report.Skipped, run.Report.Failed, string(failures), run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*skillpack.CorpusRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, strategy, discovered, extracted, skipped, failed, failures, created_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, skillpack.Errorf(skillpack.ENOTFOUND, "run not found")
	}
	return run, err
}

// FindRuns retrieves all runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*skillpack.CorpusRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_url, strategy, discovered, extracted, skipped, failed, failures, created_at
		FROM runs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*skillpack.CorpusRun
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// scanRun reads one run row through the given scan function.
func scanRun(scan func(dest ...any) error) (*skillpack.CorpusRun, error) {
	var run skillpack.CorpusRun
	var failures, createdAt string

	if err := scan(&run.ID, &run.SourceURL, &run.Strategy, &run.Report.Discovered,
		&run.Report.Extracted, &run.Report.Skipped, &run.Report.Failed, &failures, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(failures), &run.Report.Failures); err != nil {
		return nil, fmt.Errorf("failed to decode failures: %w", err)
	}
	var err error
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &run, nil
}

// SaveRecords persists the run's page records in discovery order. The whole
// batch commits in one transaction so a partial corpus never becomes
// visible.
func (s *RunService) SaveRecords(ctx context.Context, runID string, records []*skillpack.PageRecord) error {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pages (run_id, identity, title, raw_text, markdown, category, language,
			content_hash, position, failed, diagnostic, code_blocks, images, headings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		codeBlocks, err := json.Marshal(rec.CodeBlocks)
		if err != nil {
			return fmt.Errorf("failed to encode code blocks: %w", err)
		}
		images, err := json.Marshal(rec.Images)
		if err != nil {
			return fmt.Errorf("failed to encode images: %w", err)
		}
		headings, err := json.Marshal(rec.Headings)
		if err != nil {
			return fmt.Errorf("failed to encode headings: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, runID, rec.Identity, rec.Title, rec.RawText,
			rec.Markdown, rec.Category, rec.Language, rec.ContentHash, rec.DiscoveredAt,
			boolToInt(rec.Failed), rec.Diagnostic, string(codeBlocks), string(images), string(headings)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves the run's page records in discovery order.
func (s *RunService) FindRecords(ctx context.Context, runID string) ([]*skillpack.PageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identity, title, raw_text, markdown, category, language, content_hash,
			position, failed, diagnostic, code_blocks, images, headings
		FROM pages
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*skillpack.PageRecord
	for rows.Next() {
		var rec skillpack.PageRecord
		var failed int
		var codeBlocks, images, headings string

		if err := rows.Scan(&rec.Identity, &rec.Title, &rec.RawText, &rec.Markdown,
			&rec.Category, &rec.Language, &rec.ContentHash, &rec.DiscoveredAt,
			&failed, &rec.Diagnostic, &codeBlocks, &images, &headings); err != nil {
			return nil, err
		}
		rec.Failed = failed != 0

		if err := json.Unmarshal([]byte(codeBlocks), &rec.CodeBlocks); err != nil {
			return nil, fmt.Errorf("failed to decode code blocks: %w", err)
		}
		if err := json.Unmarshal([]byte(images), &rec.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
		if err := json.Unmarshal([]byte(headings), &rec.Headings); err != nil {
			return nil, fmt.Errorf("failed to decode headings: %w", err)
		}

		records = append(records, &rec)
	}
	return records, rows.Err()
}

// DeleteRun removes a run and, via the cascade, its records.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return skillpack.Errorf(skillpack.ENOTFOUND, "run not found")
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
