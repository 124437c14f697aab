package progscout

import "context"

// DomainLimiter rate limits outbound requests per domain so that scraping
// many candidate pages from one provider stays polite.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}

// VisitedSet tracks URLs that have already been processed in a run.
// Implementations may be probabilistic: false positives are acceptable
// (a page is skipped that was not actually seen), false negatives are not.
type VisitedSet interface {
	Add(url string)
	Test(url string) bool
}
