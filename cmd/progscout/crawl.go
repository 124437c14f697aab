package main

import (
	"fmt"
	"regexp"

	"github.com/progscout/progscout"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	filter, err := buildURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	result, err := deps.Scraper.CrawlSite(deps.Ctx, c.URL, filter, printProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", result.Results)
	if result.Results == 0 {
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Saved %d of %d programs from %d pages (%d skipped, %d failed)\n",
		result.Saved, result.Found, result.Pages, result.Skipped, result.Failed)
	return nil
}

// buildURLFilter compiles include and exclude patterns into a URL
// filter. Returns nil when no patterns are given.
func buildURLFilter(include, exclude []string) (*progscout.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	filter := &progscout.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, progscout.Errorf(progscout.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, progscout.Errorf(progscout.EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
