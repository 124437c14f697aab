package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.QueryService = (*QueryService)(nil)

// QueryService is a mock implementation of progscout.QueryService.
type QueryService struct {
	CreateQueryFn func(ctx context.Context, q *progscout.Query) error
	FindQueriesFn func(ctx context.Context, limit int) ([]*progscout.Query, error)
}

func (s *QueryService) CreateQuery(ctx context.Context, q *progscout.Query) error {
	return s.CreateQueryFn(ctx, q)
}

func (s *QueryService) FindQueries(ctx context.Context, limit int) ([]*progscout.Query, error) {
	return s.FindQueriesFn(ctx, limit)
}
