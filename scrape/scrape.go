// Package scrape orchestrates program discovery: search, fetch,
// extraction, enrichment, and storage of educational program listings.
package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/progscout/progscout"
	"golang.org/x/sync/errgroup"
)

// exclusionTerms narrows web searches away from listings that match the
// keywords but are not programs.
const exclusionTerms = "-jobs -careers -employment -hire -vacancy -scholarship"

// Scraper coordinates one topic search end to end. All collaborators are
// interfaces from the root package; LLM, Queries, Snapshots, Converter,
// Seen and RateLimiter are optional and skipped when nil.
type Scraper struct {
	Searcher    progscout.Searcher
	Fetcher     progscout.Fetcher
	Extractor   progscout.Extractor
	LLM         progscout.Extractor
	Content     progscout.ContentExtractor
	Converter   progscout.Converter
	Programs    progscout.ProgramService
	Queries     progscout.QueryService
	Snapshots   progscout.SnapshotService
	Sitemaps    progscout.SitemapService
	Seen        progscout.VisitedSet
	RateLimiter progscout.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scrape run.
type Result struct {
	Query   string
	Results int
	Pages   int
	Found   int
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single search result.
type pageResult struct {
	position int
	url      string
	skipped  bool
	programs []*progscout.Program
	err      error
}

// Run searches for programs matching topic and filters, processes each
// result page concurrently, and saves the extracted records.
//
// Searches run through a relaxation ladder: the query is tried with
// country and region qualifiers first, then with country only, then
// bare. The first non-empty result set wins.
func (s *Scraper) Run(ctx context.Context, topic string, filters progscout.SearchFilters, maxResults int, progress ProgressFunc) (*Result, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, progscout.Errorf(progscout.EINVALID, "search topic required")
	}
	filters.Normalize()
	if maxResults <= 0 {
		maxResults = 10
	}

	if s.Queries != nil {
		q := &progscout.Query{Topic: topic, Filters: filters}
		if err := s.Queries.CreateQuery(ctx, q); err != nil {
			return nil, err
		}
	}

	var result Result
	var results []progscout.SearchResult
	for _, query := range buildQueries(topic, filters) {
		found, err := s.Searcher.Search(ctx, query, maxResults)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}
		if len(found) > 0 {
			result.Query = query
			results = found
			break
		}
	}
	result.Results = len(results)
	if len(results) == 0 {
		return &result, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	total := len(results)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, res := range results {
			i, res := i, res
			g.Go(func() error {
				resultCh <- s.processResult(gctx, i, res, filters)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	pages := make([]pageResult, total)
	for pr := range resultCh {
		completed.Add(1)
		pages[pr.position] = pr

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       pr.url,
			Error:     pr.err,
		}
		switch {
		case pr.err != nil:
			event.Type = ProgressFailed
		case pr.skipped:
			event.Type = ProgressSkipped
		default:
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	var programs []*progscout.Program
	for _, pr := range pages {
		switch {
		case pr.err != nil:
			result.Failed++
		case pr.skipped:
			result.Skipped++
		default:
			result.Pages++
			programs = append(programs, pr.programs...)
		}
	}
	result.Found = len(programs)

	if len(programs) > 0 {
		saved, err := s.Programs.CreatePrograms(ctx, programs)
		if err != nil {
			return nil, err
		}
		result.Saved = saved
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return &result, nil
}

// processResult fetches one search result page and extracts its programs.
// Pages that fail relevance gates come back skipped rather than failed.
func (s *Scraper) processResult(ctx context.Context, position int, res progscout.SearchResult, filters progscout.SearchFilters) pageResult {
	pr := pageResult{position: position, url: res.Link}

	if s.Seen != nil && s.Seen.Test(res.Link) {
		pr.skipped = true
		return pr
	}

	if s.RateLimiter != nil {
		u, err := url.Parse(res.Link)
		if err != nil {
			pr.skipped = true
			return pr
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			pr.err = err
			return pr
		}
	}

	html, err := s.fetch(ctx, res.Link)
	if err != nil || strings.TrimSpace(html) == "" {
		// A dead page is not worth failing the run over.
		pr.skipped = true
		return pr
	}

	var pageTitle, pageText, contentHTML string
	if s.Content != nil {
		if content, err := s.Content.ExtractContent(html); err == nil {
			pageTitle = content.Title
			pageText = content.Text
			contentHTML = content.ContentHTML
		}
	}

	combined := res.Title + " " + res.Snippet + " " + pageTitle + " " + pageText
	if !progscout.LooksEducational(combined) {
		pr.skipped = true
		return pr
	}
	if !progscout.MatchesLocation(combined, filters.Country, filters.Region) {
		pr.skipped = true
		return pr
	}

	programs, err := s.extract(ctx, html, res.Link)
	if err != nil {
		pr.err = err
		return pr
	}
	for _, rec := range programs {
		enrich(rec, res, pageTitle, pageText, filters)
	}
	pr.programs = programs

	s.snapshot(ctx, res.Link, pageTitle, contentHTML)

	if s.Seen != nil {
		s.Seen.Add(res.Link)
	}
	return pr
}

// fetch retrieves a page with retry backoff.
func (s *Scraper) fetch(ctx context.Context, pageURL string) (string, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, delays)
}

// extract runs the LLM extractor when configured, falling back to the
// heuristic pipeline when it errors or finds nothing.
func (s *Scraper) extract(ctx context.Context, html, pageURL string) ([]*progscout.Program, error) {
	if s.LLM != nil {
		programs, err := s.LLM.ExtractPrograms(ctx, html, pageURL)
		if err == nil && len(programs) > 0 {
			return programs, nil
		}
	}
	return s.Extractor.ExtractPrograms(ctx, html, pageURL)
}

// snapshot persists the page's readable content as markdown. Failures are
// silent: snapshots are an audit trail, not run output.
func (s *Scraper) snapshot(ctx context.Context, pageURL, title, contentHTML string) {
	if s.Snapshots == nil || s.Converter == nil || contentHTML == "" {
		return
	}
	markdown, err := s.Converter.Convert(contentHTML)
	if err != nil || strings.TrimSpace(markdown) == "" {
		return
	}
	snap := &progscout.Snapshot{
		URL:     pageURL,
		Title:   title,
		Content: markdown,
	}
	_ = s.Snapshots.SaveSnapshot(ctx, snap)
}

// buildQueries returns the search relaxation ladder for a topic: most
// specific first, each query carrying filter-derived terms and the
// exclusion terms.
func buildQueries(topic string, filters progscout.SearchFilters) []string {
	parts := []string{topic, "course OR training OR program"}
	switch progscout.Type(filters.Type) {
	case progscout.TypeCourse:
		parts = append(parts, "course")
	case progscout.TypeSeminar:
		parts = append(parts, "seminar OR workshop")
	case progscout.TypeVideo:
		parts = append(parts, "video OR lecture")
	}
	switch progscout.Mode(filters.Mode) {
	case progscout.ModeOnline:
		parts = append(parts, "online")
	case progscout.ModeInPerson:
		parts = append(parts, "in person OR on campus")
	}
	switch filters.Cost {
	case "Free":
		parts = append(parts, "free")
	case "Paid":
		parts = append(parts, "fee OR $")
	}
	parts = append(parts, exclusionTerms)
	base := strings.Join(parts, " ")

	var queries []string
	if filters.Country != progscout.AnyLocation {
		if filters.Region != progscout.AnyLocation {
			queries = append(queries, base+" "+filters.Region+" "+filters.Country)
		}
		queries = append(queries, base+" "+filters.Country)
	}
	return append(queries, base)
}
