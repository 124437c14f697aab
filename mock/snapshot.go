package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of progscout.SnapshotService.
type SnapshotService struct {
	SaveSnapshotFn      func(ctx context.Context, snap *progscout.Snapshot) error
	FindSnapshotByURLFn func(ctx context.Context, url string) (*progscout.Snapshot, error)
	FindSnapshotsFn     func(ctx context.Context, filter progscout.SnapshotFilter) ([]*progscout.Snapshot, error)
	CountDomainsFn      func(ctx context.Context) (int, error)
}

func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *progscout.Snapshot) error {
	return s.SaveSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByURL(ctx context.Context, url string) (*progscout.Snapshot, error) {
	return s.FindSnapshotByURLFn(ctx, url)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter progscout.SnapshotFilter) ([]*progscout.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) CountDomains(ctx context.Context) (int, error) {
	return s.CountDomainsFn(ctx)
}
