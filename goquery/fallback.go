package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/progscout/progscout"
)

// isoDateRe finds the first ISO calendar date in page text.
var isoDateRe = regexp.MustCompile(`\b(20\d{2}-\d{2}-\d{2})\b`)

// FallbackStrategy builds a single record from page-level metadata when
// nothing else matched. It runs last and only on otherwise-empty pages.
type FallbackStrategy struct {
	Dates progscout.DateParser
}

// Name identifies the strategy.
func (s *FallbackStrategy) Name() string { return "fallback" }

// Extract returns one record describing the page itself, or nothing when
// the page does not read educational.
func (s *FallbackStrategy) Extract(doc *goquery.Document, _ *url.URL, pageURL string) []*progscout.Program {
	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = metaContent(doc, `meta[name="twitter:title"]`)
	}
	if title == "" {
		title = progscout.CleanText(doc.Find("title").First().Text())
	}

	desc := metaContent(doc, `meta[property="og:description"]`)
	if desc == "" {
		desc = metaContent(doc, `meta[name="twitter:description"]`)
	}

	// Destructive removal is fine here: this strategy runs last.
	doc.Find("script, style, noscript").Remove()
	text := progscout.CleanText(doc.Text())

	if !progscout.LooksEducational(title + " " + desc + " " + text) {
		return nil
	}

	rec := &progscout.Program{
		Title:       title,
		Description: desc,
		URL:         pageURL,
		Type:        progscout.ClassifyType(title + " " + desc + " " + text),
	}

	if matches := progscout.ParsePrices(text); len(matches) > 0 {
		amount := matches[0].Amount
		rec.Price = &amount
		rec.Currency = matches[0].Currency
	}

	if m := isoDateRe.FindString(text); m != "" {
		rec.StartDate = s.Dates.NormalizeDate(m)
	}

	if strings.Contains(strings.ToLower(text), "online") {
		rec.Mode = progscout.ModeOnline
	}

	return []*progscout.Program{rec}
}

func metaContent(doc *goquery.Document, selector string) string {
	return progscout.CleanText(doc.Find(selector).First().AttrOr("content", ""))
}
