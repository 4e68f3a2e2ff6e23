package mock

import (
	"context"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

var _ epiotrkow.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of epiotrkow.Enricher.
type Enricher struct {
	EnrichFn func(ctx context.Context, url string) (epiotrkow.EnrichmentResult, error)
}

func (e *Enricher) Enrich(ctx context.Context, url string) (epiotrkow.EnrichmentResult, error) {
	return e.EnrichFn(ctx, url)
}
