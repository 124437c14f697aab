package progscout

import "context"

// SearchResult is one candidate returned by a web search.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher runs a web search and returns candidate pages in engine order.
// The scraper only consumes Link as a base URL; ranking is the engine's
// business and is not re-derived here.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
