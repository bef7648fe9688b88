package mock

import (
	"context"

	"github.com/skillpack/skillpack"
)

var _ skillpack.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is a mock implementation of skillpack.CorpusStore.
type CorpusStore struct {
	CreateRunFn   func(ctx context.Context, run *skillpack.CorpusRun) error
	FindRunByIDFn func(ctx context.Context, id string) (*skillpack.CorpusRun, error)
	FindRunsFn    func(ctx context.Context) ([]*skillpack.CorpusRun, error)
	SaveRecordsFn func(ctx context.Context, runID string, records []*skillpack.PageRecord) error
	FindRecordsFn func(ctx context.Context, runID string) ([]*skillpack.PageRecord, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *CorpusStore) CreateRun(ctx context.Context, run *skillpack.CorpusRun) error {
	return s.CreateRunFn(ctx, run)
}

func (s *CorpusStore) FindRunByID(ctx context.Context, id string) (*skillpack.CorpusRun, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *CorpusStore) FindRuns(ctx context.Context) ([]*skillpack.CorpusRun, error) {
	return s.FindRunsFn(ctx)
}

func (s *CorpusStore) SaveRecords(ctx context.Context, runID string, records []*skillpack.PageRecord) error {
	return s.SaveRecordsFn(ctx, runID, records)
}

func (s *CorpusStore) FindRecords(ctx context.Context, runID string) ([]*skillpack.PageRecord, error) {
	return s.FindRecordsFn(ctx, runID)
}

func (s *CorpusStore) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
