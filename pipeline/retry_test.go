package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MartiniMK/rss-epiotrkow/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroDelays makes retry tests run without waiting.
func zeroDelays(n int) []time.Duration {
	return make([]time.Duration, n)
}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately on success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html></html>", nil
		}

		html, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, zeroDelays(3))

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries until a fetch succeeds", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("HTTP 503")
			}
			return "ok", nil
		}

		html, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, zeroDelays(3))

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns the last error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("HTTP 500")
		}

		_, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, zeroDelays(2))

		require.Error(t, err)
		assert.Equal(t, "HTTP 500", err.Error())
		assert.Equal(t, 3, attempts) // 1 initial + 2 retries
	})

	t.Run("stops retrying when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		fetch := func(c context.Context, url string) (string, error) {
			attempts++
			cancel()
			return "", errors.New("HTTP 503")
		}

		_, err := pipeline.FetchWithRetryDelays(ctx, "https://example.com", fetch, []time.Duration{time.Hour})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("makes a single attempt with no delays", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("HTTP 500")
		}

		_, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil)

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, pipeline.DefaultRetryDelays())
}
