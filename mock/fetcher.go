package mock

import (
	"context"

	"github.com/skillpack/skillpack"
)

var _ skillpack.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of skillpack.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ skillpack.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of skillpack.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
