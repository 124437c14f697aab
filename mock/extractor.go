package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of progscout.Extractor.
type Extractor struct {
	ExtractProgramsFn func(ctx context.Context, html, pageURL string) ([]*progscout.Program, error)
}

func (e *Extractor) ExtractPrograms(ctx context.Context, html, pageURL string) ([]*progscout.Program, error) {
	return e.ExtractProgramsFn(ctx, html, pageURL)
}
