// Package serpapi implements web search over the SerpAPI Google engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/progscout/progscout"
)

// DefaultBaseURL is the SerpAPI endpoint.
const DefaultBaseURL = "https://serpapi.com/search.json"

// DefaultTimeout bounds one search request.
const DefaultTimeout = 15 * time.Second

// Ensure Searcher implements progscout.Searcher at compile time.
var _ progscout.Searcher = (*Searcher)(nil)

// Searcher runs Google searches through SerpAPI.
type Searcher struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the SerpAPI endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(s *Searcher) {
		s.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Searcher) {
		s.client = c
	}
}

// NewSearcher creates a Searcher with the given API key.
func NewSearcher(apiKey string, opts ...Option) *Searcher {
	s := &Searcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// searchResponse mirrors the slice of the SerpAPI payload we consume.
type searchResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
	Error string `json:"error"`
}

// Search runs one query and returns up to limit organic results in
// engine order.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]progscout.SearchResult, error) {
	if s.apiKey == "" {
		return nil, progscout.Errorf(progscout.EINVALID, "SerpAPI key required")
	}
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("num", strconv.Itoa(limit))
	params.Set("api_key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, progscout.Errorf(progscout.EINTERNAL, "search failed with HTTP %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if payload.Error != "" {
		return nil, progscout.Errorf(progscout.EINTERNAL, "search failed: %s", payload.Error)
	}

	results := make([]progscout.SearchResult, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		if r.Link == "" {
			continue
		}
		results = append(results, progscout.SearchResult{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}
