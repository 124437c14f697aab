package progscout_test

import (
	"testing"

	"github.com/progscout/progscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUSDPrice(t *testing.T) {
	t.Parallel()

	t.Run("converts via fixed table", func(t *testing.T) {
		t.Parallel()

		price := 100.0
		usd := progscout.USDPrice(&price, "AUD")

		require.NotNil(t, usd)
		assert.InDelta(t, 153.85, *usd, 0.01)
	})

	t.Run("USD is identity", func(t *testing.T) {
		t.Parallel()

		price := 42.0
		usd := progscout.USDPrice(&price, "usd")

		require.NotNil(t, usd)
		assert.Equal(t, 42.0, *usd)
	})

	t.Run("nil for missing price or unknown currency", func(t *testing.T) {
		t.Parallel()

		price := 10.0
		assert.Nil(t, progscout.USDPrice(nil, "USD"))
		assert.Nil(t, progscout.USDPrice(&price, ""))
		assert.Nil(t, progscout.USDPrice(&price, "XYZ"))
	})
}

func TestMatchesLocation(t *testing.T) {
	t.Parallel()

	t.Run("wildcard country matches everything", func(t *testing.T) {
		t.Parallel()

		assert.True(t, progscout.MatchesLocation("anything at all", progscout.AnyLocation, progscout.AnyLocation))
	})

	t.Run("wildcard region requires country", func(t *testing.T) {
		t.Parallel()

		assert.True(t, progscout.MatchesLocation("courses across Australia", "Australia", progscout.AnyLocation))
		assert.False(t, progscout.MatchesLocation("courses in Canada", "Australia", progscout.AnyLocation))
	})

	t.Run("country or region is enough", func(t *testing.T) {
		t.Parallel()

		assert.True(t, progscout.MatchesLocation("Melbourne workshop", "Australia", "Melbourne"))
		assert.True(t, progscout.MatchesLocation("australia-wide program", "Australia", "Melbourne"))
		assert.False(t, progscout.MatchesLocation("London seminar", "Australia", "Melbourne"))
	})
}
