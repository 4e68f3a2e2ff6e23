package mock

import (
	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

var _ epiotrkow.ListingCollector = (*ListingCollector)(nil)

// ListingCollector is a mock implementation of epiotrkow.ListingCollector.
type ListingCollector struct {
	CollectFn func(html string, pageURL string) ([]*epiotrkow.Item, error)
}

func (c *ListingCollector) Collect(html string, pageURL string) ([]*epiotrkow.Item, error) {
	return c.CollectFn(html, pageURL)
}
