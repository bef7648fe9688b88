package mock

import (
	"context"

	"github.com/skillpack/skillpack"
)

var _ skillpack.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of skillpack.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *skillpack.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *skillpack.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
