package epiotrkow

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PlaceholderTitle is assigned when every title extraction step fails.
// Items in the final feed never carry an empty title.
const PlaceholderTitle = "No title"

// Item is a single article in the generated feed. Items are created during
// the listing pass, enriched at most once, and never mutated afterwards.
// Nothing is persisted across runs; the feed is rebuilt from scratch every
// invocation.
type Item struct {
	// URL is the absolute, canonicalized article URL. It is the unique key
	// across a whole run.
	URL string

	// ID is a stable content-addressed identifier derived from URL. The same
	// article yields the same ID across runs regardless of title or order.
	ID string

	// Title is resolved once during the listing pass and is never empty.
	Title string

	// ImageURL and ImageMIMEType are optional and set at most once during
	// the listing pass.
	ImageURL      string
	ImageMIMEType string

	// PublishedAt is set only by detail enrichment. Nil means unknown.
	PublishedAt *time.Time

	// Lead is a bounded summary set only by detail enrichment.
	Lead string
}

// Validate returns an error if the item violates its invariants.
func (it *Item) Validate() error {
	if it.URL == "" {
		return Errorf(EINVALID, "item URL required")
	}
	if it.ID == "" {
		return Errorf(EINVALID, "item ID required")
	}
	if it.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	return nil
}

// ApplyEnrichment merges an enrichment result into the item. Fields are
// additive only: a value already present is never overwritten or cleared.
func (it *Item) ApplyEnrichment(res EnrichmentResult) {
	if it.PublishedAt == nil && res.PublishedAt != nil {
		t := res.PublishedAt.UTC()
		it.PublishedAt = &t
	}
	if it.Lead == "" && res.Lead != "" {
		it.Lead = res.Lead
	}
}

// EnrichmentResult holds the outcome of one detail-page extraction. Both
// fields are optional; an item that fails enrichment simply lacks them.
type EnrichmentResult struct {
	PublishedAt *time.Time
	Lead        string
}

// Empty reports whether the result carries no data at all.
func (r EnrichmentResult) Empty() bool {
	return r.PublishedAt == nil && r.Lead == ""
}

// ItemID computes the stable identifier for a canonical article URL.
func ItemID(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}
