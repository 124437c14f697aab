package goquery

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/progscout/progscout"
)

// Object types that are clearly non-educational. A denylist rather than an
// allowlist: structured vocabularies vary too widely to enumerate the
// types worth keeping.
var jsonldDenylist = []string{"jobposting", "person", "organization", "faqpage", "article"}

// JSONLDStrategy extracts records from embedded JSON-LD script blocks.
type JSONLDStrategy struct {
	Dates progscout.DateParser
}

// Name identifies the strategy.
func (s *JSONLDStrategy) Name() string { return "jsonld" }

// Extract parses every ld+json block and maps course/event/creative-work
// objects to candidate records. A malformed block is skipped and scanning
// continues with the remaining blocks.
func (s *JSONLDStrategy) Extract(doc *goquery.Document, base *url.URL, pageURL string) []*progscout.Program {
	var out []*progscout.Program
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		objs, err := decodeBlock(sel.Text())
		if err != nil {
			// Skip this block, keep the rest of the page.
			return
		}
		for _, obj := range objs {
			if rec := s.recordFromObject(obj, base, pageURL); rec != nil {
				out = append(out, rec)
			}
		}
	})
	return out
}

// decodeBlock parses one ld+json block into its top-level objects,
// unwrapping list and @graph containers.
func decodeBlock(raw string) ([]map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}

	var objs []map[string]any
	switch data := v.(type) {
	case []any:
		for _, item := range data {
			if m, ok := item.(map[string]any); ok {
				objs = append(objs, m)
			}
		}
	case map[string]any:
		if graph, ok := data["@graph"].([]any); ok {
			for _, item := range graph {
				if m, ok := item.(map[string]any); ok {
					objs = append(objs, m)
				}
			}
		} else {
			objs = append(objs, data)
		}
	}
	return objs, nil
}

// recordFromObject maps one type-tagged object to a candidate record, or
// nil if the object is non-educational or a pure stub.
func (s *JSONLDStrategy) recordFromObject(obj map[string]any, base *url.URL, pageURL string) *progscout.Program {
	typ := strings.ToLower(typeString(obj["@type"]))
	if containsAnyKeyword(typ, jsonldDenylist) {
		return nil
	}

	var rec *progscout.Program
	switch {
	case strings.Contains(typ, "course"):
		rec = s.courseRecord(obj, base, pageURL)
	case strings.Contains(typ, "event"):
		rec = s.eventRecord(obj, base, pageURL)
	case strings.Contains(typ, "creativework") || strings.Contains(typ, "learningresource"):
		rec = &progscout.Program{
			Title:       coerceString(obj["name"]),
			Description: coerceString(obj["description"]),
			URL:         resolveIfRelative(base, objectURL(obj, pageURL)),
		}
	default:
		return nil
	}

	// Pure stubs carry no title and no description; discard them.
	if rec == nil || (rec.Title == "" && rec.Description == "") {
		return nil
	}
	return rec
}

func (s *JSONLDStrategy) courseRecord(obj map[string]any, base *url.URL, pageURL string) *progscout.Program {
	price, currency := lowestOffer(obj["offers"])

	org := obj["provider"]
	if org == nil {
		org = obj["organizer"]
	}

	return &progscout.Program{
		Title:       coerceString(obj["name"]),
		Description: coerceString(obj["description"]),
		URL:         resolveIfRelative(base, objectURL(obj, pageURL)),
		StartDate:   s.Dates.NormalizeDate(coerceString(obj["startDate"])),
		EndDate:     s.Dates.NormalizeDate(coerceString(obj["endDate"])),
		Mode:        progscout.Mode(coerceString(obj["courseMode"])),
		Venue:       entityName(org),
		Price:       price,
		Currency:    currency,
		Type:        progscout.TypeCourse,
	}
}

func (s *JSONLDStrategy) eventRecord(obj map[string]any, base *url.URL, pageURL string) *progscout.Program {
	price, currency := lowestOffer(obj["offers"])

	loc := obj["location"]
	var addr any
	if m, ok := loc.(map[string]any); ok {
		addr = m["address"]
	}

	return &progscout.Program{
		Title:       coerceString(obj["name"]),
		Description: coerceString(obj["description"]),
		URL:         resolveIfRelative(base, objectURL(obj, pageURL)),
		StartDate:   s.Dates.NormalizeDate(coerceString(obj["startDate"])),
		EndDate:     s.Dates.NormalizeDate(coerceString(obj["endDate"])),
		Mode:        progscout.Mode(coerceString(obj["eventAttendanceMode"])),
		Venue:       entityName(loc),
		City:        cityFromAddress(addr),
		Country:     countryFromAddress(addr),
		Price:       price,
		Currency:    currency,
		Type:        progscout.TypeSeminar,
	}
}

// objectURL returns the object's own URL, falling back to the page URL.
func objectURL(obj map[string]any, pageURL string) string {
	if u := coerceString(obj["url"]); u != "" {
		return u
	}
	if u := coerceString(obj["mainEntityOfPage"]); u != "" {
		return u
	}
	return pageURL
}

// lowestOffer walks an offer or offer list and returns the lowest price
// with its paired currency. Offers without a parseable price are skipped.
func lowestOffer(offers any) (*float64, string) {
	if offers == nil {
		return nil, ""
	}

	items, ok := offers.([]any)
	if !ok {
		items = []any{offers}
	}

	var best *float64
	var currency string
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		price, ok := numericValue(m["price"])
		if !ok {
			continue
		}
		if best == nil || price < *best {
			p := price
			best = &p
			currency = progscout.NormalizeCurrency(coerceString(m["priceCurrency"]))
		}
	}
	return best, currency
}

// numericValue extracts a float from a JSON number or numeric string.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceString flattens a JSON value to cleaned text: strings pass
// through, lists yield their first non-empty entry, scalars are printed.
// Maps yield their name or @id when present.
func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return progscout.CleanText(val)
	case []any:
		for _, item := range val {
			if s := coerceString(item); s != "" {
				return s
			}
		}
		return ""
	case map[string]any:
		if s := coerceString(val["name"]); s != "" {
			return s
		}
		return coerceString(val["@id"])
	default:
		return progscout.CleanText(fmt.Sprint(val))
	}
}

// typeString flattens a @type value (string or list) to one string.
func typeString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// entityName extracts a display name from an entity value, which may be a
// bare string or an object with name/addressLocality.
func entityName(v any) string {
	if m, ok := v.(map[string]any); ok {
		if s := coerceString(m["name"]); s != "" {
			return s
		}
		return coerceString(m["addressLocality"])
	}
	return coerceString(v)
}

func cityFromAddress(addr any) string {
	if m, ok := addr.(map[string]any); ok {
		if s := coerceString(m["addressLocality"]); s != "" {
			return s
		}
		return coerceString(m["addressRegion"])
	}
	return ""
}

func countryFromAddress(addr any) string {
	if m, ok := addr.(map[string]any); ok {
		return coerceString(m["addressCountry"])
	}
	return ""
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
