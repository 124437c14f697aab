package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/progscout/progscout"
)

// Compile-time interface verification.
var _ progscout.QueryService = (*QueryService)(nil)

// QueryService implements progscout.QueryService using SQLite.
type QueryService struct {
	db *DB
}

// NewQueryService creates a new QueryService.
func NewQueryService(db *DB) *QueryService {
	return &QueryService{db: db}
}

// CreateQuery stores a query audit record.
func (s *QueryService) CreateQuery(ctx context.Context, q *progscout.Query) error {
	if q.Topic == "" {
		return progscout.Errorf(progscout.EINVALID, "query topic required")
	}

	q.ID = uuid.New().String()
	q.CreatedAt = time.Now().UTC()
	q.Filters.Normalize()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO queries (id, topic, type, mode, cost, country, region, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Topic, q.Filters.Type, q.Filters.Mode, q.Filters.Cost,
		q.Filters.Country, q.Filters.Region, q.CreatedAt.Format(time.RFC3339))

	return err
}

// FindQueries returns stored queries, newest first.
func (s *QueryService) FindQueries(ctx context.Context, limit int) ([]*progscout.Query, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic, type, mode, cost, country, region, created_at
		FROM queries
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []*progscout.Query
	for rows.Next() {
		var q progscout.Query
		var createdAt string
		if err := rows.Scan(&q.ID, &q.Topic, &q.Filters.Type, &q.Filters.Mode,
			&q.Filters.Cost, &q.Filters.Country, &q.Filters.Region, &createdAt); err != nil {
			return nil, err
		}
		q.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		queries = append(queries, &q)
	}
	return queries, rows.Err()
}
