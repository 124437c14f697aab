package progscout

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered listing pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its raw HTML.
	// The HTML is returned unstripped so the extraction pipeline can read
	// embedded structured data. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
