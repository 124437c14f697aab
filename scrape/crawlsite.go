package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/progscout/progscout"
	"golang.org/x/sync/errgroup"
)

// CrawlSite discovers candidate pages from a provider's sitemap and runs
// fetch, extraction, and storage over them. It is the non-search path
// for providers whose catalogs are too large to reach via web search.
func (s *Scraper) CrawlSite(ctx context.Context, siteURL string, filter *progscout.URLFilter, progress ProgressFunc) (*Result, error) {
	if s.Sitemaps == nil {
		return nil, progscout.Errorf(progscout.EINVALID, "sitemap discovery not configured")
	}

	urls, err := s.Sitemaps.DiscoverURLs(ctx, siteURL, filter)
	if err != nil {
		return nil, err
	}

	result := Result{Query: siteURL, Results: len(urls)}
	if len(urls) == 0 {
		return &result, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			i, pageURL := i, pageURL
			g.Go(func() error {
				resultCh <- s.processPage(gctx, i, pageURL)
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

// processPage handles one sitemap URL. Unlike search results there is no
// snippet context, so relevance gates use page content alone and records
// keep their extracted locations.
func (s *Scraper) processPage(ctx context.Context, position int, pageURL string) pageResult {
	pr := pageResult{position: position, url: pageURL}

	if s.Seen != nil && s.Seen.Test(pageURL) {
		pr.skipped = true
		return pr
	}

	if s.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			pr.skipped = true
			return pr
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			pr.err = err
			return pr
		}
	}

	html, err := s.fetch(ctx, pageURL)
	if err != nil || strings.TrimSpace(html) == "" {
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

	if !progscout.LooksEducational(pageTitle + " " + pageText) {
		pr.skipped = true
		return pr
	}

	programs, err := s.extract(ctx, html, pageURL)
	if err != nil {
		pr.err = err
		return pr
	}

	anyFilters := progscout.SearchFilters{}
	anyFilters.Normalize()
	for _, rec := range programs {
		enrich(rec, progscout.SearchResult{}, pageTitle, pageText, anyFilters)
	}
	pr.programs = programs

	s.snapshot(ctx, pageURL, pageTitle, contentHTML)

	if s.Seen != nil {
		s.Seen.Add(pageURL)
	}
	return pr
}
