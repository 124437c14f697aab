package progscout

import (
	"context"
	"time"
)

// PlaceholderTitle is used for records whose title could not be determined.
const PlaceholderTitle = "Program"

// Mode describes how a program is delivered.
type Mode string

// Delivery modes. Extraction may leave Mode empty; normalization collapses
// every record to exactly one of these.
const (
	ModeOnline   Mode = "Online"
	ModeInPerson Mode = "In-person"
	ModeUnknown  Mode = "Unknown"
)

// Type categorizes a program by its format.
type Type string

// Program types.
const (
	TypeCourse  Type = "Course"
	TypeSeminar Type = "Seminar"
	TypeVideo   Type = "Video"
	TypeOther   Type = "Other"
)

// Program represents a single educational-program record extracted from a
// web page. A Program is constructed by one extraction strategy, passed
// through the normalization pass, and never mutated afterwards.
type Program struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Price is the canonical price. When a range was parsed the lower
	// bound is retained. Nil means no price was found.
	Price *float64 `json:"price"`

	// Currency is a canonical code (e.g. "USD") or empty when unknown.
	// It is never a raw symbol.
	Currency string `json:"currency"`

	// PriceUSD is the price converted to USD via the fixed exchange
	// table. Nil when Price or Currency is missing or unmapped.
	PriceUSD *float64 `json:"priceUsd"`

	// StartDate and EndDate are ISO dates (YYYY-MM-DD) or empty.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Mode    Mode   `json:"mode"`
	Venue   string `json:"venue"`
	City    string `json:"city"`
	Country string `json:"country"`
	Type    Type   `json:"type"`

	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the program contains invalid fields.
// Title and URL are guaranteed non-empty by the extraction pipeline's
// normalization pass; storage rejects anything that slipped through.
func (p *Program) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "program title required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "program URL required")
	}
	return nil
}

// Stats summarizes the stored program corpus.
type Stats struct {
	Programs int `json:"programs"`
	Approved int `json:"approved"`
	Sources  int `json:"sources"`
}

// ProgramService represents a service for managing stored programs.
// Stored rows are deduplicated by (url, title) at the storage boundary,
// independent of the extraction pipeline's per-call dedupe.
type ProgramService interface {
	// CreatePrograms stores a batch of normalized programs. Rows whose
	// (url, title) pair already exists are silently skipped. Returns the
	// number of rows actually inserted.
	CreatePrograms(ctx context.Context, programs []*Program) (int, error)

	// FindProgramByID retrieves a program by ID.
	// Returns ENOTFOUND if the program does not exist.
	FindProgramByID(ctx context.Context, id string) (*Program, error)

	// FindPrograms retrieves programs matching the filter.
	FindPrograms(ctx context.Context, filter ProgramFilter) ([]*Program, error)

	// SetApproved updates the approval flag on a program.
	// Returns ENOTFOUND if the program does not exist.
	SetApproved(ctx context.Context, id string, approved bool) error

	// Stats returns corpus-wide counts.
	Stats(ctx context.Context) (*Stats, error)
}

// Cost filter values for ProgramFilter.
const (
	CostFree = "Free"
	CostPaid = "Paid"
)

// ProgramFilter represents a filter for FindPrograms.
type ProgramFilter struct {
	ID   *string `json:"id"`
	Type *Type   `json:"type"`
	Mode *Mode   `json:"mode"`

	// Cost is CostFree (nil or zero price) or CostPaid (positive price).
	Cost *string `json:"cost"`

	// Case-insensitive substring matches.
	CountryContains *string `json:"countryContains"`
	CityContains    *string `json:"cityContains"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
