package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	epiohttp "github.com/MartiniMK/rss-epiotrkow/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		f := epiohttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>ok</body></html>", html)
	})

	t.Run("sends the configured User-Agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := epiohttp.NewFetcher(epiohttp.WithUserAgent("rss-epiotrkow-test"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "rss-epiotrkow-test", gotUA)
	})

	t.Run("reports non-2xx responses as errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		f := epiohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := epiohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)

		assert.Error(t, err)
	})

	t.Run("rejects an invalid URL", func(t *testing.T) {
		t.Parallel()

		f := epiohttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "://bad")

		assert.Error(t, err)
	})
}
