package main

import (
	"fmt"

	"github.com/progscout/progscout"
	"github.com/progscout/progscout/scrape"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filters := progscout.SearchFilters{
		Type:    c.Type,
		Mode:    c.Mode,
		Cost:    c.Cost,
		Country: c.Country,
		Region:  c.Region,
	}

	result, err := deps.Scraper.Run(deps.Ctx, c.Topic, filters, c.Max, printProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	if result.Results == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Try a broader topic or location.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Query: %s\n", result.Query)
	fmt.Fprintf(deps.Stdout, "Saved %d of %d programs from %d pages (%d skipped, %d failed)\n",
		result.Saved, result.Found, result.Pages, result.Skipped, result.Failed)
	return nil
}

// printProgress returns a callback that reports page progress as it
// happens. Failures go to stderr so they survive piping stdout.
func printProgress(deps *Dependencies) scrape.ProgressFunc {
	return func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d pages...\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, 60))
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] skip %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, 60))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", scrape.TruncateURL(event.URL, 60), event.Error)
		}
	}
}
