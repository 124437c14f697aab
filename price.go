package progscout

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyTable maps currency symbols and aliases to canonical codes.
var currencyTable = map[string]string{
	"$":   "USD",
	"US$": "USD",
	"USD": "USD",
	"A$":  "AUD",
	"AU$": "AUD",
	"AUD": "AUD",
	"£":   "GBP",
	"GBP": "GBP",
	"€":   "EUR",
	"EUR": "EUR",
	"₹":   "INR",
	"INR": "INR",
}

// priceRe recognizes a single price or a price range with optional currency
// markers. The first alternative matches ranges ("$100 to 150", "100–150
// USD"), the second matches single prices. Amounts allow thousand
// separators and up to two decimal places.
var priceRe = regexp.MustCompile(`(?i)` +
	`(?P<curr>USD|AUD|EUR|GBP|INR|US\$|AU\$|A\$|\$|£|€|₹)?\s*` +
	`(?P<amt1>(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d{1,2})?)\s*` +
	`(?:to|–|-|—|and)\s*` +
	`(?:(?P<currRange>USD|AUD|EUR|GBP|INR|US\$|AU\$|A\$|\$|£|€|₹)?\s*)` +
	`(?P<amt2>(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d{1,2})?)?` +
	`(?:\s*(?P<curr2>USD|AUD|EUR|GBP|INR))?` +
	`|` +
	`(?P<currSolo>USD|AUD|EUR|GBP|INR|US\$|AU\$|A\$|\$|£|€|₹)?\s*` +
	`(?P<amtSolo>(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d{1,2})?)` +
	`(?:\s*(?P<curr2Solo>USD|AUD|EUR|GBP|INR))?`)

var priceGroups = func() map[string]int {
	m := make(map[string]int)
	for i, name := range priceRe.SubexpNames() {
		if name != "" {
			m[name] = i
		}
	}
	return m
}()

// PriceMatch is one parsed price occurrence.
type PriceMatch struct {
	// Amount is the parsed decimal value. For ranges this is the first
	// (lower) amount.
	Amount float64

	// Currency is the normalized currency code, or empty if the match
	// carried no currency marker.
	Currency string
}

// ParsePrices scans text for price tokens and returns them in first-match
// order. Malformed numeric tokens are skipped silently.
//
// When a range carries several currency markers the first non-empty group
// wins, checked in order: leading, range, trailing, solo-leading,
// solo-trailing. For ambiguous multi-currency ranges ("$100 to €150") this
// is arbitrary first-match-wins behavior, kept as-is deliberately.
func ParsePrices(text string) []PriceMatch {
	var out []PriceMatch
	for _, m := range priceRe.FindAllStringSubmatch(text, -1) {
		amt := m[priceGroups["amt1"]]
		if amt == "" {
			amt = m[priceGroups["amtSolo"]]
		}
		if amt == "" {
			continue
		}

		var curr string
		for _, name := range []string{"curr", "currRange", "curr2", "currSolo", "curr2Solo"} {
			if v := m[priceGroups[name]]; v != "" {
				curr = NormalizeCurrency(v)
				break
			}
		}

		v, err := strconv.ParseFloat(strings.ReplaceAll(amt, ",", ""), 64)
		if err != nil {
			continue
		}
		out = append(out, PriceMatch{Amount: v, Currency: curr})
	}
	return out
}

// NormalizeCurrency maps a currency symbol or alias to its canonical code.
// Unknown tokens pass through uppercased rather than being rejected.
func NormalizeCurrency(cur string) string {
	cur = strings.ToUpper(strings.TrimSpace(cur))
	if cur == "" {
		return ""
	}
	if code, ok := currencyTable[cur]; ok {
		return code
	}
	return cur
}
