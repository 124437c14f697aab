// Package goquery implements the HTML extraction pipeline: a cascade of
// strategies that turn one page's HTML into normalized program records.
//
// Strategies run in priority order — structured data first, heuristics
// later — each gated by how many records have accumulated so far. Adding
// a new heuristic is a matter of appending a stage.
package goquery

import (
	"context"
	"math"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/progscout/progscout"
)

// Output and gating limits for a single-page extraction call.
const (
	// maxRecords caps the pipeline's output.
	maxRecords = 30

	// heuristicThreshold gates the list-heuristic stage: it only runs
	// when structured extraction produced fewer records than this.
	// Richer sources rarely need heuristics; cheap sources need them.
	heuristicThreshold = 5
)

// Ensure Pipeline implements progscout.Extractor at compile time.
var _ progscout.Extractor = (*Pipeline)(nil)

// Strategy produces candidate records from a parsed document. Candidates
// are raw: the pipeline's normalization pass owns field defaults.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract scans doc and returns zero or more candidate records.
	// base is the parsed page URL (may be nil if unparseable); pageURL
	// is the raw page URL used as the default record URL.
	Extract(doc *goquery.Document, base *url.URL, pageURL string) []*progscout.Program
}

// stage pairs a strategy with its gate.
type stage struct {
	strategy Strategy

	// runBelow gates the stage: it runs only while fewer than runBelow
	// records have accumulated.
	runBelow int
}

// Pipeline is the extraction orchestrator. It is a pure function of its
// inputs plus wall-clock time (date reinterpretation); invocations are
// independent and safe to run concurrently across pages.
type Pipeline struct {
	stages []stage
}

// NewPipeline creates a Pipeline with the default strategy cascade:
// JSON-LD, microdata, list heuristic, page-metadata fallback.
func NewPipeline(dates progscout.DateParser) *Pipeline {
	return &Pipeline{
		stages: []stage{
			{strategy: &JSONLDStrategy{Dates: dates}, runBelow: math.MaxInt},
			{strategy: &MicrodataStrategy{Dates: dates}, runBelow: math.MaxInt},
			{strategy: &ListStrategy{}, runBelow: heuristicThreshold},
			{strategy: &FallbackStrategy{Dates: dates}, runBelow: 1},
		},
	}
}

// ExtractPrograms runs the strategy cascade over html and returns
// normalized, deduplicated records, capped at 30.
//
// Malformed input never produces an error: unparseable HTML or structured
// blocks degrade to fewer (or zero) records.
func (p *Pipeline) ExtractPrograms(_ context.Context, html, pageURL string) ([]*progscout.Program, error) {
	if strings.TrimSpace(html) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var records []*progscout.Program
	for _, st := range p.stages {
		if len(records) >= st.runBelow {
			continue
		}
		records = append(records, st.strategy.Extract(doc, base, pageURL)...)
	}

	for _, rec := range records {
		normalizeRecord(rec, pageURL)
	}

	records = dedupeRecords(records)
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}
	return records, nil
}

// normalizeRecord applies the field defaults every record gets regardless
// of which strategy produced it.
func normalizeRecord(rec *progscout.Program, pageURL string) {
	rec.Title = progscout.CleanText(rec.Title)
	if rec.Title == "" {
		rec.Title = progscout.PlaceholderTitle
	}
	rec.Description = progscout.CleanText(rec.Description)
	if rec.URL == "" {
		rec.URL = pageURL
	}
	rec.Currency = progscout.NormalizeCurrency(rec.Currency)
	rec.Mode = progscout.NormalizeMode(string(rec.Mode))
	if rec.Type == "" {
		rec.Type = progscout.ClassifyType(rec.Title + " " + rec.Description)
	}
}

// dedupeRecords drops records sharing a (lower title, lower url) key,
// preserving first-seen order.
func dedupeRecords(records []*progscout.Program) []*progscout.Program {
	seen := make(map[string]struct{}, len(records))
	out := records[:0]
	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(rec.URL))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// resolveRef resolves href against base. Fragments are kept so callers
// can reject fragment-only targets.
func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// resolveIfRelative resolves raw against base only when raw has no
// network location of its own.
func resolveIfRelative(base *url.URL, raw string) string {
	if raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Host != "" || base == nil {
		return raw
	}
	return base.ResolveReference(u).String()
}
