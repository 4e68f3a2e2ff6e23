// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import (
	"context"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

var _ epiotrkow.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of epiotrkow.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
