// Package dateparser normalizes free-text dates to ISO calendar dates
// using go-dateparser's multi-format, multi-language parsing.
package dateparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/progscout/progscout"
)

// Ensure Parser implements progscout.DateParser at compile time.
var _ progscout.DateParser = (*Parser)(nil)

// reinterpretWindow bounds how far into the future a year-omitted date may
// be pushed when re-read as next year.
const reinterpretWindow = 400 * 24 * time.Hour

// yearRe detects an explicit four-digit year in the raw text.
var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// Parser normalizes date strings relative to a clock.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithNow overrides the clock. Used by tests.
func WithNow(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a new Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NormalizeDate parses raw date text and returns it as YYYY-MM-DD, or ""
// when the text cannot be interpreted as a date.
//
// Listings frequently omit the year ("March 3"). A parsed date that lands
// in the past is re-read with next year appended; the reinterpretation is
// accepted when it stays within 400 days of now. Dates carrying an
// explicit year are returned as parsed.
func (p *Parser) NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Fully-qualified ISO dates short-circuit the heuristics.
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02")
	}

	now := p.now()
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Future,
	}

	dt, err := dateparser.Parse(cfg, raw)
	if err != nil || dt.Time.IsZero() {
		return ""
	}

	t := dt.Time
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if t.Before(today) && !yearRe.MatchString(raw) {
		alt, altErr := dateparser.Parse(cfg, fmt.Sprintf("%s %d", raw, now.Year()+1))
		if altErr == nil && !alt.Time.IsZero() && alt.Time.Sub(now) < reinterpretWindow {
			t = alt.Time
		}
	}

	return t.Format("2006-01-02")
}
