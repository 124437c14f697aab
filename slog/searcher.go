// Package slog provides logging decorators for progscout services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/progscout/progscout"
)

// Ensure LoggingSearcher implements progscout.Searcher.
var _ progscout.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   progscout.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next progscout.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search logs the query and result count, delegating to the wrapped
// searcher.
func (s *LoggingSearcher) Search(ctx context.Context, query string, limit int) (results []progscout.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}
