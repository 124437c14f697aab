package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/progscout/progscout"
)

// Ensure LoggingSitemapService implements progscout.SitemapService.
var _ progscout.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   progscout.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next progscout.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs logs the base URL and discovered count, delegating to the
// wrapped service.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *progscout.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discover",
			"base_url", baseURL,
			"urls", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
