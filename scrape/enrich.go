package scrape

import (
	"strings"

	"github.com/progscout/progscout"
)

// maxTitleLen caps enriched titles. Search and page titles can run to
// whole sentences; anything longer than this is noise in a listing.
const maxTitleLen = 140

// enrich fills a record's gaps from the page context: search result
// title and snippet, extracted page title and text, and the query
// filters the user asked for.
func enrich(rec *progscout.Program, res progscout.SearchResult, pageTitle, pageText string, filters progscout.SearchFilters) {
	if rec.Title == "" || rec.Title == progscout.PlaceholderTitle {
		switch {
		case progscout.CleanText(res.Title) != "":
			rec.Title = progscout.CleanText(res.Title)
		case progscout.CleanText(pageTitle) != "":
			rec.Title = progscout.CleanText(pageTitle)
		default:
			rec.Title = progscout.PlaceholderTitle
		}
	}
	rec.Title = truncate(rec.Title, maxTitleLen)

	combined := rec.Title + " " + rec.Description + " " + res.Snippet + " " + pageText

	if rec.Type == "" || rec.Type == progscout.TypeOther {
		rec.Type = progscout.ClassifyType(combined)
	}
	// Full-page text is too noisy for the keyword families; only an
	// explicit "online" mention promotes the mode.
	if rec.Mode == "" || rec.Mode == progscout.ModeUnknown {
		if strings.Contains(strings.ToLower(combined), "online") {
			rec.Mode = progscout.ModeOnline
		} else {
			rec.Mode = progscout.ModeUnknown
		}
	}

	if rec.Country == "" && filters.Country != progscout.AnyLocation {
		rec.Country = filters.Country
	}
	if rec.City == "" && filters.Region != progscout.AnyLocation {
		rec.City = filters.Region
	}

	if rec.PriceUSD == nil {
		rec.PriceUSD = progscout.USDPrice(rec.Price, rec.Currency)
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n])
}
