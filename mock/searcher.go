package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of progscout.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]progscout.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]progscout.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
