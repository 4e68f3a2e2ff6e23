package pipeline

import (
	"context"
	"net/url"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

var _ epiotrkow.Fetcher = (*ThrottledFetcher)(nil)

// ThrottledFetcher decorates a Fetcher with per-host rate limiting and
// backoff retries. Because the enrichment stage fetches through the same
// Fetcher as the listing scan, wrapping here throttles every outbound
// request the run makes.
type ThrottledFetcher struct {
	fetcher epiotrkow.Fetcher
	limiter epiotrkow.RateLimiter
	delays  []time.Duration
}

// NewThrottledFetcher wraps fetcher with limiter and retry delays.
// Nil delays fall back to DefaultRetryDelays.
func NewThrottledFetcher(fetcher epiotrkow.Fetcher, limiter epiotrkow.RateLimiter, delays []time.Duration) *ThrottledFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &ThrottledFetcher{
		fetcher: fetcher,
		limiter: limiter,
		delays:  delays,
	}
}

// Fetch waits for the host's rate limit, then fetches with retries.
func (f *ThrottledFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", epiotrkow.Errorf(epiotrkow.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return FetchWithRetryDelays(ctx, rawURL, f.fetcher.Fetch, f.delays)
}

// Close releases the underlying fetcher.
func (f *ThrottledFetcher) Close() error {
	return f.fetcher.Close()
}
