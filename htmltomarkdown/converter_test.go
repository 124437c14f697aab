package htmltomarkdown_test

import (
	"testing"

	"github.com/progscout/progscout"
	"github.com/progscout/progscout/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings links and tables", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<h1>Welding Course</h1>
			<p>Enroll <a href="https://example.com/enroll">here</a>.</p>
			<table><tr><th>Start</th><th>Price</th></tr><tr><td>Sept</td><td>$450</td></tr></table>`)
		require.NoError(t, err)

		assert.Contains(t, md, "# Welding Course")
		assert.Contains(t, md, "[here](https://example.com/enroll)")
		assert.Contains(t, md, "| Start | Price |")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("  \n ")
		require.Error(t, err)
		assert.Equal(t, progscout.EINVALID, progscout.ErrorCode(err))
	})
}
