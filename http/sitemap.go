package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/progscout/progscout"
)

// Ensure SitemapService implements progscout.SitemapService.
var _ progscout.SitemapService = (*SitemapService)(nil)

// SitemapService discovers candidate program pages from provider
// sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap. It reads Sitemap:
// directives from robots.txt first and falls back to /sitemap.xml.
// Sitemap indexes are resolved recursively. Returns an empty slice (not
// nil) if no sitemaps are found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *progscout.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	sitemaps := s.sitemapCandidates(ctx, base)
	if len(sitemaps) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var out []string

	for _, sitemapURL := range sitemaps {
		urls, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seenURLs[u] || !filter.Match(u) {
				continue
			}
			seenURLs[u] = true
			out = append(out, u)
		}
	}

	if out == nil {
		out = []string{}
	}
	return out, nil
}

// sitemapCandidates returns the sitemap URLs to walk: robots.txt
// directives when present, otherwise /sitemap.xml.
func (s *SitemapService) sitemapCandidates(ctx context.Context, base *url.URL) []string {
	root := *base
	root.Path = ""

	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robotsURL); err == nil {
		defer body.Close()

		var sitemaps []string
		scanner := bufio.NewScanner(body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
				continue
			}
			if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
		if scanner.Err() == nil && len(sitemaps) > 0 {
			return sitemaps
		}
	}

	return []string{root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
}

// walkSitemap fetches and parses one sitemap, recursing into indexes.
// A sitemap that cannot be fetched contributes nothing rather than
// failing discovery.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	if root.Tag == "sitemapindex" {
		var out []string
		for _, child := range root.SelectElements("sitemap") {
			childURL := elementLoc(child)
			if childURL == "" {
				continue
			}
			urls, err := s.walkSitemap(ctx, childURL, seen)
			if err != nil {
				return nil, err
			}
			out = append(out, urls...)
		}
		return out, nil
	}

	var out []string
	for _, entry := range root.SelectElements("url") {
		if u := elementLoc(entry); u != "" {
			out = append(out, u)
		}
	}
	return out, nil
}

// elementLoc returns the trimmed text of an element's <loc> child.
func elementLoc(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}

// get fetches a URL and returns the response body.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}
