package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/progscout/progscout"
)

// Compile-time interface verification.
var _ progscout.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements progscout.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveSnapshot inserts or replaces the snapshot for its URL.
func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *progscout.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.FetchedAt = time.Now().UTC()
	snap.ContentHash = hashContent(snap.Content)
	if u, err := url.Parse(snap.URL); err == nil {
		snap.Domain = strings.ToLower(u.Host)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, url, domain, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			domain = excluded.domain,
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, snap.ID, snap.URL, snap.Domain, snap.Title, snap.Content, snap.ContentHash,
		snap.FetchedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByURL retrieves the snapshot for a URL.
func (s *SnapshotService) FindSnapshotByURL(ctx context.Context, rawURL string) (*progscout.Snapshot, error) {
	var snap progscout.Snapshot
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, domain, title, content, content_hash, fetched_at
		FROM snapshots
		WHERE url = ?
	`, rawURL).Scan(&snap.ID, &snap.URL, &snap.Domain, &snap.Title,
		&snap.Content, &snap.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, progscout.Errorf(progscout.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter progscout.SnapshotFilter) ([]*progscout.Snapshot, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, url, domain, title, content, content_hash, fetched_at
		FROM snapshots
		WHERE 1=1
	`)

	var args []any
	if filter.Domain != nil {
		sb.WriteString(" AND domain = LOWER(?)")
		args = append(args, *filter.Domain)
	}
	sb.WriteString(" ORDER BY fetched_at DESC, url ASC")
	appendPagination(&sb, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*progscout.Snapshot
	for rows.Next() {
		var snap progscout.Snapshot
		var fetchedAt string
		if err := rows.Scan(&snap.ID, &snap.URL, &snap.Domain, &snap.Title,
			&snap.Content, &snap.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}
		snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, &snap)
	}
	return snaps, rows.Err()
}

// CountDomains returns the number of distinct source domains.
func (s *SnapshotService) CountDomains(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT domain) FROM snapshots WHERE domain != ''").Scan(&count)
	return count, err
}
