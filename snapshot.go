package progscout

import (
	"context"
	"time"
)

// Snapshot preserves the readable content of a scraped page. Snapshots
// back the program detail view and allow re-running extraction without
// refetching.
type Snapshot struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Domain      string    `json:"domain"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot URL required")
	}
	return nil
}

// SnapshotService persists page snapshots. A URL keeps a single snapshot;
// re-scraping replaces it.
type SnapshotService interface {
	// SaveSnapshot inserts or replaces the snapshot for its URL.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByURL retrieves the snapshot for a URL.
	// Returns ENOTFOUND if no snapshot exists.
	FindSnapshotByURL(ctx context.Context, url string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// CountDomains returns the number of distinct source domains.
	CountDomains(ctx context.Context) (int, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Domain *string `json:"domain"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
