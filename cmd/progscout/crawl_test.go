package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/progscout/progscout"
	main "github.com/progscout/progscout/cmd/progscout"
	"github.com/progscout/progscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls sitemap URLs and saves programs", func(t *testing.T) {
		t.Parallel()

		var saved []*progscout.Program
		scraper := newTestScraper(&saved)
		scraper.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, _ *progscout.URLFilter) ([]string, error) {
				assert.Equal(t, "https://example.com", baseURL)
				return []string{"https://example.com/welding"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Scraper = scraper

		cmd := &main.CrawlCmd{URL: "https://example.com"}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Found 1 URLs")
		assert.Contains(t, output, "Saved 1 of 1 programs")
		require.Len(t, saved, 1)
	})

	t.Run("passes include and exclude patterns to discovery", func(t *testing.T) {
		t.Parallel()

		var received *progscout.URLFilter
		scraper := newTestScraper(nil)
		scraper.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, filter *progscout.URLFilter) ([]string, error) {
				received = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Scraper = scraper

		cmd := &main.CrawlCmd{
			URL:     "https://example.com",
			Filter:  []string{"/courses/"},
			Exclude: []string{"/blog/"},
		}

		err := cmd.Run(deps)
		require.NoError(t, err)
		require.NotNil(t, received)
		require.Len(t, received.Include, 1)
		assert.Equal(t, "/courses/", received.Include[0].String())
		require.Len(t, received.Exclude, 1)
		assert.Equal(t, "/blog/", received.Exclude[0].String())
		assert.Contains(t, stdout.String(), "Found 0 URLs")
	})

	t.Run("returns error for invalid filter regex", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Scraper = newTestScraper(nil)

		cmd := &main.CrawlCmd{URL: "https://example.com", Filter: []string{"[invalid"}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, progscout.EINVALID, progscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid filter pattern")
	})

	t.Run("returns error when discovery fails", func(t *testing.T) {
		t.Parallel()

		scraper := newTestScraper(nil)
		scraper.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *progscout.URLFilter) ([]string, error) {
				return nil, progscout.Errorf(progscout.EINTERNAL, "sitemap unreachable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Scraper = scraper

		cmd := &main.CrawlCmd{URL: "https://example.com"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: sitemap unreachable")
	})
}
