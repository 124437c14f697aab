package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/progscout/progscout"
	progscouthttp "github.com/progscout/progscout/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const urlsetTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
%s
</urlset>`

func urlset(urls ...string) string {
	entries := ""
	for _, u := range urls {
		entries += fmt.Sprintf("<url><loc>%s</loc></url>\n", u)
	}
	return fmt.Sprintf(urlsetTemplate, entries)
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("falls back to sitemap.xml without robots directives", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, urlset(srv.URL+"/courses/a", srv.URL+"/courses/b"))
		})

		s := progscouthttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/courses/a", srv.URL + "/courses/b"}, urls)
	})

	t.Run("reads sitemap directives from robots.txt", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprintf(w, "User-agent: *\nSitemap: %s/special-map.xml\n", srv.URL)
		})
		mux.HandleFunc("/special-map.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, urlset(srv.URL+"/events/x"))
		})

		s := progscouthttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/events/x"}, urls)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprintf(w, `<?xml version="1.0"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
<sitemap><loc>%s/part1.xml</loc></sitemap>
<sitemap><loc>%s/part2.xml</loc></sitemap>
</sitemapindex>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/part1.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, urlset(srv.URL+"/a"))
		})
		mux.HandleFunc("/part2.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, urlset(srv.URL+"/b", srv.URL+"/a"))
		})

		s := progscouthttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("applies include and exclude patterns", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, urlset(
				srv.URL+"/courses/go",
				srv.URL+"/courses/archive/old",
				srv.URL+"/blog/post",
			))
		})

		filter := &progscout.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/courses/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/archive/`)},
		}
		s := progscouthttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/courses/go"}, urls)
	})

	t.Run("missing sitemap yields empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		s := progscouthttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.NotNil(t, urls)
	})
}
