package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/progscout/progscout"
)

// listScanLimit bounds how many list items one page contributes. Index
// pages can run to hundreds of rows; past this point they repeat.
const listScanLimit = 60

// listSelectors are combined into one query so items come back in
// document order, each at most once. The set mirrors the markup
// patterns course catalogs actually use.
var listSelectors = []string{
	"main li",
	"main div.course-item",
	"main div.event-card",
	".course-list > div",
	".events-grid > *",
	"section li",
	"ul.course-list > li",
	"ol.course-list > li",
	"table tr",
}

// ListStrategy extracts records from repeated listing markup: catalog
// rows, card grids, tables. It is a heuristic and only runs when the
// structured strategies came up short.
type ListStrategy struct{}

// Name identifies the strategy.
func (s *ListStrategy) Name() string { return "list" }

// Extract scans candidate list items for a linked multi-word heading and
// keeps those whose text reads educational.
func (s *ListStrategy) Extract(doc *goquery.Document, base *url.URL, _ string) []*progscout.Program {
	var out []*progscout.Program
	doc.Find(strings.Join(listSelectors, ",")).EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= listScanLimit {
			return false
		}
		if rec := recordFromItem(item, base); rec != nil {
			out = append(out, rec)
		}
		return true
	})
	return out
}

// recordFromItem maps one list item to a record, or nil if it lacks the
// shape of a program listing.
func recordFromItem(item *goquery.Selection, base *url.URL) *progscout.Program {
	title := itemTitle(item)
	if title == "" {
		return nil
	}

	href, ok := item.Find("a[href]").First().Attr("href")
	if !ok {
		return nil
	}
	resolved := resolveRef(base, href)
	u, err := url.Parse(resolved)
	if err != nil || u.Host == "" || u.Fragment != "" {
		return nil
	}

	desc := itemDescription(item)
	combined := title + " " + desc
	if !progscout.LooksEducational(combined) {
		return nil
	}

	rec := &progscout.Program{
		Title:       title,
		Description: desc,
		URL:         resolved,
		Type:        progscout.ClassifyType(combined),
	}

	text := progscout.CleanText(item.Text())
	if matches := progscout.ParsePrices(text); len(matches) > 0 {
		amount := matches[0].Amount
		rec.Price = &amount
		rec.Currency = matches[0].Currency
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "online") || strings.Contains(lower, "virtual") {
		rec.Mode = progscout.ModeOnline
	}

	return rec
}

// itemTitle picks the first heading-like child with more than one word.
// Single-word headings are navigation labels, not program titles.
func itemTitle(item *goquery.Selection) string {
	var title string
	item.Find("h2, h3, h4, a").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := progscout.CleanText(h.Text())
		if len(strings.Fields(text)) > 1 {
			title = text
			return false
		}
		return true
	})
	return title
}

// itemDescription picks the first paragraph-like child with more than
// five words.
func itemDescription(item *goquery.Selection) string {
	var desc string
	item.Find("p, div").EachWithBreak(func(_ int, d *goquery.Selection) bool {
		text := progscout.CleanText(d.Text())
		if len(strings.Fields(text)) > 5 {
			desc = text
			return false
		}
		return true
	})
	return desc
}
