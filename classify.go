package progscout

import (
	"regexp"
	"strings"
)

// eduKeywords is the fixed vocabulary used to decide whether a page or
// list item is educational at all.
var eduKeywords = []string{
	"course", "class", "workshop", "training", "tutorial", "webinar",
	"lecture", "program", "degree", "diploma", "certificate", "bootcamp",
	"seminar", "learn", "education", "study", "mooc", "lesson",
	"curriculum", "module",
}

// Type classification keywords, checked in priority order.
var (
	seminarKeywords = []string{"webinar", "seminar", "workshop", "conference"}
	videoKeywords   = []string{"video", "youtube", "vimeo", "lecture"}
	courseKeywords  = []string{"course", "bootcamp", "mooc", "degree", "diploma", "certificate"}
)

// Mode keyword families for normalization.
var (
	onlineKeywords   = []string{"online", "virtual", "remote"}
	inPersonKeywords = []string{"inperson", "in-person", "in person", "campus", "onsite", "on-site", "classroom"}
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses runs of whitespace to single spaces and trims.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// LooksEducational reports whether text mentions any educational keyword.
// The test is a case-insensitive substring match.
func LooksEducational(text string) bool {
	return containsAny(strings.ToLower(text), eduKeywords)
}

// ClassifyType derives a program type from free text by priority keyword
// match: seminar keywords beat video keywords beat course keywords.
func ClassifyType(text string) Type {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, seminarKeywords):
		return TypeSeminar
	case containsAny(t, videoKeywords):
		return TypeVideo
	case containsAny(t, courseKeywords):
		return TypeCourse
	default:
		return TypeOther
	}
}

// NormalizeMode collapses raw delivery-mode text to one of the three
// canonical modes. Text already equal to a canonical mode is kept; any
// other text is matched against the keyword families and falls back to
// ModeUnknown ("Hybrid flexible" normalizes to Unknown).
func NormalizeMode(raw string) Mode {
	switch Mode(raw) {
	case ModeOnline, ModeInPerson, ModeUnknown:
		return Mode(raw)
	}
	t := strings.ToLower(raw)
	switch {
	case containsAny(t, onlineKeywords):
		return ModeOnline
	case containsAny(t, inPersonKeywords):
		return ModeInPerson
	default:
		return ModeUnknown
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
