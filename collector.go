package epiotrkow

// ListingCollector extracts article items from one listing page's markup.
type ListingCollector interface {
	// Collect scans the markup with every configured selector strategy,
	// keeps anchors matching the canonical article pattern, and resolves
	// title and image for each. Relative hrefs are resolved against pageURL.
	//
	// Anchors are deduplicated by raw href within the page; the result is
	// ordered by strategy order then document order. An empty result with a
	// nil error means no anchor matched any strategy.
	//
	// Returned items carry only owned values; parse-tree handles never
	// outlive the call.
	Collect(html string, pageURL string) ([]*Item, error)
}
