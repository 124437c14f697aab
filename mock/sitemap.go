package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of progscout.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *progscout.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *progscout.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
