// Package goquery provides goquery-backed implementations of the listing
// collector and the detail enricher. All CSS-selector work against scraped
// markup lives here; parse-tree handles never leave this package.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// Ensure ListingCollector implements epiotrkow.ListingCollector at compile time.
var _ epiotrkow.ListingCollector = (*ListingCollector)(nil)

// ListingCollector scans one listing page with an ordered cascade of selector
// strategies and resolves a title and an optional image for every anchor that
// matches the canonical article pattern.
type ListingCollector struct {
	strategies []epiotrkow.SelectorStrategy
	pattern    *regexp.Regexp
	titleSel   string
	headingSel string
}

// NewListingCollector creates a ListingCollector from the run configuration.
func NewListingCollector(cfg epiotrkow.Config) *ListingCollector {
	return &ListingCollector{
		strategies: cfg.Strategies,
		pattern:    cfg.ArticlePathPattern,
		titleSel:   cfg.TitleSelector,
		headingSel: cfg.TitleHeadingSelector,
	}
}

// Collect extracts article items from the markup of one listing page.
// Every strategy contributes anchors (union, not first-match); anchors are
// deduplicated by raw href before the canonical-pattern filter so the
// fallback strategy cannot re-add a tile already collected. Result order is
// strategy order, then document order.
func (c *ListingCollector) Collect(html string, pageURL string) ([]*epiotrkow.Item, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, epiotrkow.Errorf(epiotrkow.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, epiotrkow.Errorf(epiotrkow.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var items []*epiotrkow.Item

	for _, strategy := range c.strategies {
		doc.Find(strategy.Selector).Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok || href == "" {
				return
			}
			if seen[href] {
				return
			}
			seen[href] = true

			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			// Category and pagination links lack the trailing ",<id>".
			if !c.pattern.MatchString(ref.Path) {
				return
			}

			resolved := base.ResolveReference(ref).String()
			item := &epiotrkow.Item{
				URL:   resolved,
				ID:    epiotrkow.ItemID(resolved),
				Title: c.resolveTitle(doc, a),
			}
			if src, mime := resolveImage(doc, a, base); src != "" {
				item.ImageURL = src
				item.ImageMIMEType = mime
			}
			items = append(items, item)
		})
	}

	return items, nil
}
