package progscout

import "strings"

// AnyLocation is the wildcard value for country and region filters.
const AnyLocation = "Any"

// CountryRegions lists the countries and regions offered by the search
// filters. The first entry of each region list is the wildcard.
var CountryRegions = map[string][]string{
	AnyLocation:      {AnyLocation},
	"Australia":      {AnyLocation, "Melbourne", "Sydney", "Brisbane", "Perth", "Adelaide"},
	"United States":  {AnyLocation, "New York", "Los Angeles", "Chicago", "San Francisco"},
	"United Kingdom": {AnyLocation, "London", "Manchester", "Birmingham"},
	"Canada":         {AnyLocation, "Toronto", "Vancouver", "Montreal"},
	"India":          {AnyLocation, "Mumbai", "Delhi", "Bengaluru", "Chennai"},
}

// exchangeRates maps canonical currency codes to their USD-relative rate.
// Fixed table; live FX lookup is out of scope.
var exchangeRates = map[string]float64{
	"USD": 1.0,
	"AUD": 0.65,
	"GBP": 1.25,
	"EUR": 1.08,
	"INR": 0.012,
}

// USDPrice converts a price to USD via the fixed exchange table.
// Returns nil when the price or currency is missing or the currency has no
// known rate.
func USDPrice(price *float64, currency string) *float64 {
	if price == nil || currency == "" {
		return nil
	}
	rate, ok := exchangeRates[strings.ToUpper(currency)]
	if !ok || rate == 0 {
		return nil
	}
	v := *price * (exchangeRates["USD"] / rate)
	return &v
}

// MatchesLocation reports whether text plausibly refers to the given
// country/region pair. A wildcard country matches everything; a wildcard
// region requires only the country to appear; otherwise either the country
// or the region appearing in the text is enough.
func MatchesLocation(text, country, region string) bool {
	if country == AnyLocation {
		return true
	}
	t := strings.ToLower(text)
	c := strings.ToLower(country)
	if region == AnyLocation {
		return strings.Contains(t, c)
	}
	return strings.Contains(t, c) || strings.Contains(t, strings.ToLower(region))
}
