package scrape_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/progscout/progscout/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	zeroDelays := []time.Duration{0, 0, 0}

	t.Run("first attempt success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}, nil, zeroDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("timeout")
			}
			return "ok", nil
		}, nil, zeroDelays)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("connection refused")
		calls := 0
		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", func(_ context.Context, _ string) (string, error) {
			calls++
			return "", wantErr
		}, nil, zeroDelays)

		assert.Equal(t, wantErr, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		_, err := scrape.FetchWithRetryDelays(ctx, "https://example.com", func(_ context.Context, _ string) (string, error) {
			calls++
			cancel()
			return "", errors.New("timeout")
		}, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("logger sees each retry", func(t *testing.T) {
		t.Parallel()

		var logged int
		_, _ = scrape.FetchWithRetryDelays(context.Background(), "https://example.com", func(_ context.Context, _ string) (string, error) {
			return "", errors.New("timeout")
		}, func(_ string, _ ...any) {
			logged++
		}, zeroDelays)

		assert.Equal(t, 3, logged)
	})
}
