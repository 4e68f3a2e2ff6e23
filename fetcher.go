package epiotrkow

import "context"

// Fetcher retrieves raw HTML from URLs. Retry, throttling and logging are
// layered on top as decorators; implementations only perform the retrieval.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its markup.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// RateLimiter provides per-host rate limiting for outbound requests.
type RateLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
