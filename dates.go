package progscout

// DateParser normalizes free-text date strings to ISO calendar dates.
type DateParser interface {
	// NormalizeDate parses raw date text and returns it as YYYY-MM-DD.
	// Returns "" when the text cannot be interpreted as a date.
	//
	// Year-omitted dates that land in the past relative to "now" are
	// speculatively re-interpreted as next year when that puts them
	// within 400 days of now; dates carrying an explicit year are never
	// reinterpreted.
	NormalizeDate(raw string) string
}
