package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/progscout/progscout"
)

// Ensure LoggingExtractor implements progscout.Extractor.
var _ progscout.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   progscout.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next progscout.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPrograms logs the page URL and record count, delegating to the
// wrapped extractor.
func (e *LoggingExtractor) ExtractPrograms(ctx context.Context, html, pageURL string) (programs []*progscout.Program, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", pageURL,
			"bytes", len(html),
			"programs", len(programs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPrograms(ctx, html, pageURL)
}
