package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/progscout/progscout"
)

// Compile-time interface verification.
var _ progscout.ProgramService = (*ProgramService)(nil)

// ProgramService implements progscout.ProgramService using SQLite.
type ProgramService struct {
	db *DB
}

// NewProgramService creates a new ProgramService.
func NewProgramService(db *DB) *ProgramService {
	return &ProgramService{db: db}
}

const programColumns = "id, url, title, description, price, currency, price_usd, start_date, end_date, mode, venue, city, country, type, approved, created_at"

// CreatePrograms stores a batch of programs. Rows whose (url, title) pair
// already exists are silently skipped via INSERT OR IGNORE. Returns the
// number of rows actually inserted.
func (s *ProgramService) CreatePrograms(ctx context.Context, programs []*progscout.Program) (int, error) {
	inserted := 0
	for _, p := range programs {
		if err := p.Validate(); err != nil {
			return inserted, err
		}

		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}

		result, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO programs (`+programColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.URL, p.Title, p.Description, p.Price, p.Currency, p.PriceUSD,
			p.StartDate, p.EndDate, string(p.Mode), p.Venue, p.City, p.Country,
			string(p.Type), p.Approved, p.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return inserted, err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += int(rows)
	}
	return inserted, nil
}

// FindProgramByID retrieves a program by ID.
func (s *ProgramService) FindProgramByID(ctx context.Context, id string) (*progscout.Program, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+programColumns+" FROM programs WHERE id = ?", id)

	p, err := scanProgram(row.Scan)
	if err == sql.ErrNoRows {
		return nil, progscout.Errorf(progscout.ENOTFOUND, "program not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindPrograms retrieves programs matching the filter, newest first.
func (s *ProgramService) FindPrograms(ctx context.Context, filter progscout.ProgramFilter) ([]*progscout.Program, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + programColumns + " FROM programs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}
	if filter.Mode != nil {
		query.WriteString(" AND mode = ?")
		args = append(args, string(*filter.Mode))
	}
	if filter.Cost != nil {
		switch *filter.Cost {
		case progscout.CostFree:
			query.WriteString(" AND (price IS NULL OR price <= 0)")
		case progscout.CostPaid:
			query.WriteString(" AND price > 0")
		}
	}
	if filter.CountryContains != nil {
		query.WriteString(" AND LOWER(country) LIKE '%' || LOWER(?) || '%'")
		args = append(args, *filter.CountryContains)
	}
	if filter.CityContains != nil {
		query.WriteString(" AND LOWER(city) LIKE '%' || LOWER(?) || '%'")
		args = append(args, *filter.CityContains)
	}

	query.WriteString(" ORDER BY created_at DESC, title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*progscout.Program
	for rows.Next() {
		p, err := scanProgram(rows.Scan)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// SetApproved updates the approval flag on a program.
func (s *ProgramService) SetApproved(ctx context.Context, id string, approved bool) error {
	result, err := s.db.ExecContext(ctx, "UPDATE programs SET approved = ? WHERE id = ?", approved, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return progscout.Errorf(progscout.ENOTFOUND, "program not found")
	}
	return nil
}

// Stats returns corpus-wide counts. Sources counts distinct URL hosts,
// derived in Go since SQLite has no URL functions.
func (s *ProgramService) Stats(ctx context.Context) (*progscout.Stats, error) {
	var stats progscout.Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(approved), 0) FROM programs
	`).Scan(&stats.Programs, &stats.Approved)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT url FROM programs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hosts := make(map[string]struct{})
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			hosts[strings.ToLower(u.Host)] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.Sources = len(hosts)
	return &stats, nil
}

// scanProgram reads one program row via the given scan function.
func scanProgram(scan func(dest ...any) error) (*progscout.Program, error) {
	var p progscout.Program
	var mode, typ, createdAt string

	err := scan(&p.ID, &p.URL, &p.Title, &p.Description, &p.Price, &p.Currency,
		&p.PriceUSD, &p.StartDate, &p.EndDate, &mode, &p.Venue, &p.City,
		&p.Country, &typ, &p.Approved, &createdAt)
	if err != nil {
		return nil, err
	}

	p.Mode = progscout.Mode(mode)
	p.Type = progscout.Type(typ)
	p.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &p, nil
}
