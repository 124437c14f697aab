package progscout

import "context"

// Extractor turns one page's raw HTML into zero or more program records.
//
// Implementations must never fail on malformed input: parse errors are
// recovered per-block and the worst case is an empty result. An error
// return is reserved for environmental failures (e.g. a remote model
// being unreachable), which callers treat as "fall back to the next
// extractor", not as fatal.
type Extractor interface {
	// ExtractPrograms extracts program records from html. pageURL is the
	// page's own URL; it seeds record URLs and resolves relative links.
	ExtractPrograms(ctx context.Context, html, pageURL string) ([]*Program, error)
}
