package epiotrkow

import "context"

// Enricher extracts a publish timestamp and a lead summary from an article's
// own page. Sources are tried in priority order (structured data, alternate
// mobile markup, meta tags, heuristic text scanning) until both fields are
// obtained; whatever remains missing is simply absent from the result.
type Enricher interface {
	// Enrich fetches the article page at url and runs the extraction chain.
	// A fetch failure returns an error and an empty result; partial results
	// with a nil error are normal.
	Enrich(ctx context.Context, url string) (EnrichmentResult, error)
}
