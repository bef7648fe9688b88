package skillpack

import (
	"context"
	"time"
)

// CorpusRun is one persisted ingestion run: the source it ingested, when,
// and how it went. Page records hang off a run so repeated ingestions of the
// same source stay distinguishable.
type CorpusRun struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Strategy  string    `json:"strategy"`
	CreatedAt time.Time `json:"createdAt"`

	Report RunReport `json:"report"`
}

// Validate returns an error if the run contains invalid fields.
func (r *CorpusRun) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "run source URL required")
	}
	return nil
}

// CorpusStore persists ingestion runs and their page records, so chunking
// and splitting can be re-run with different settings without re-crawling.
type CorpusStore interface {
	// CreateRun persists a new run, assigning its ID and creation time.
	CreateRun(ctx context.Context, run *CorpusRun) error

	// FindRunByID retrieves a run. Returns ENOTFOUND if it does not exist.
	FindRunByID(ctx context.Context, id string) (*CorpusRun, error)

	// FindRuns retrieves all runs, most recent first.
	FindRuns(ctx context.Context) ([]*CorpusRun, error)

	// SaveRecords persists the run's page records in discovery order.
	SaveRecords(ctx context.Context, runID string, records []*PageRecord) error

	// FindRecords retrieves the run's page records in discovery order.
	FindRecords(ctx context.Context, runID string) ([]*PageRecord, error)

	// DeleteRun removes a run and its records.
	DeleteRun(ctx context.Context, id string) error
}
