package dateparser_test

import (
	"testing"
	"time"

	"github.com/progscout/progscout/dateparser"
	"github.com/stretchr/testify/assert"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestParser_NormalizeDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ISO dates pass through unchanged", func(t *testing.T) {
		t.Parallel()

		p := dateparser.New(dateparser.WithNow(fixedNow(now)))
		assert.Equal(t, "2024-01-15", p.NormalizeDate("2024-01-15"))
	})

	t.Run("year-omitted past date moves to next year", func(t *testing.T) {
		t.Parallel()

		p := dateparser.New(dateparser.WithNow(fixedNow(now)))
		assert.Equal(t, "2026-03-03", p.NormalizeDate("March 3"))
	})

	t.Run("year-omitted future date keeps current year", func(t *testing.T) {
		t.Parallel()

		p := dateparser.New(dateparser.WithNow(fixedNow(now)))
		assert.Equal(t, "2025-09-01", p.NormalizeDate("September 1"))
	})

	t.Run("explicit year is never reinterpreted", func(t *testing.T) {
		t.Parallel()

		p := dateparser.New(dateparser.WithNow(fixedNow(now)))
		assert.Equal(t, "2024-03-03", p.NormalizeDate("March 3, 2024"))
	})

	t.Run("unparseable text yields empty", func(t *testing.T) {
		t.Parallel()

		p := dateparser.New(dateparser.WithNow(fixedNow(now)))
		assert.Empty(t, p.NormalizeDate("sometime soon"))
		assert.Empty(t, p.NormalizeDate("   "))
	})
}
