package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/progscout/progscout"
)

// MicrodataStrategy extracts records from itemscope/itemtype microdata.
type MicrodataStrategy struct {
	Dates progscout.DateParser
}

// Name identifies the strategy.
func (s *MicrodataStrategy) Name() string { return "microdata" }

// Extract scans itemscope elements whose itemtype names a course, event,
// or educational thing and maps their itemprop children to records.
func (s *MicrodataStrategy) Extract(doc *goquery.Document, base *url.URL, _ string) []*progscout.Program {
	var out []*progscout.Program
	doc.Find("[itemscope][itemtype]").Each(func(_ int, item *goquery.Selection) {
		itype := strings.ToLower(item.AttrOr("itemtype", ""))
		if !strings.Contains(itype, "course") &&
			!strings.Contains(itype, "event") &&
			!strings.Contains(itype, "education") {
			return
		}

		rec := &progscout.Program{
			Title:       propText(item, "name"),
			Description: propText(item, "description"),
			URL:         resolveIfRelative(base, propAttr(item, "url", "href")),
			StartDate:   s.Dates.NormalizeDate(propValue(item, "startDate")),
			EndDate:     s.Dates.NormalizeDate(propValue(item, "endDate")),
			Venue:       venueProp(item),
			City:        propText(item, "addressLocality"),
			Country:     propText(item, "addressCountry"),
			Currency:    progscout.NormalizeCurrency(propValue(item, "priceCurrency")),
			Type:        progscout.ClassifyType(itype),
		}

		if raw := propValue(item, "price"); raw != "" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				rec.Price = &f
			}
		}

		if rec.Title == "" && rec.Description == "" {
			return
		}
		out = append(out, rec)
	})
	return out
}

// propText returns the cleaned text of the first matching itemprop child.
func propText(item *goquery.Selection, prop string) string {
	return progscout.CleanText(item.Find("[itemprop=" + prop + "]").First().Text())
}

// propAttr returns an attribute of the first matching itemprop child.
func propAttr(item *goquery.Selection, prop, attr string) string {
	return strings.TrimSpace(item.Find("[itemprop=" + prop + "]").First().AttrOr(attr, ""))
}

// propValue prefers a machine-readable content attribute over the
// element's visible text.
func propValue(item *goquery.Selection, prop string) string {
	sel := item.Find("[itemprop=" + prop + "]").First()
	if v, ok := sel.Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return progscout.CleanText(sel.Text())
}

// venueProp reads the venue from the item's location or organizer name.
func venueProp(item *goquery.Selection) string {
	return progscout.CleanText(item.Find("[itemprop=location] [itemprop=name], [itemprop=organizer] [itemprop=name]").First().Text())
}
