package progscout

import (
	"context"
	"time"
)

// SearchFilters narrow a program search. Zero values mean "Any".
type SearchFilters struct {
	Type    string `json:"type"`    // "Any", "Course", "Seminar", "Video", "Other"
	Mode    string `json:"mode"`    // "Any", "Online", "In-person"
	Cost    string `json:"cost"`    // "Any", "Free", "Paid"
	Country string `json:"country"` // key of CountryRegions
	Region  string `json:"region"`
}

// Normalize fills empty filter fields with the wildcard value.
func (f *SearchFilters) Normalize() {
	if f.Type == "" {
		f.Type = "Any"
	}
	if f.Mode == "" {
		f.Mode = "Any"
	}
	if f.Cost == "" {
		f.Cost = "Any"
	}
	if f.Country == "" {
		f.Country = AnyLocation
	}
	if f.Region == "" {
		f.Region = AnyLocation
	}
}

// Query is the audit record of one search run.
type Query struct {
	ID        string        `json:"id"`
	Topic     string        `json:"topic"`
	Filters   SearchFilters `json:"filters"`
	CreatedAt time.Time     `json:"createdAt"`
}

// QueryService records search runs for later inspection.
type QueryService interface {
	// CreateQuery stores a query audit record.
	CreateQuery(ctx context.Context, q *Query) error

	// FindQueries returns stored queries, newest first.
	FindQueries(ctx context.Context, limit int) ([]*Query, error)
}
