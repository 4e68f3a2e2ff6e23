package epiotrkow

import (
	"fmt"
	"regexp"
	"time"
)

// SelectorStrategy identifies article anchors by structural pattern.
// Strategies are applied as a union: every strategy runs and contributes
// anchors, in strategy order then document order. Earlier revisions stopped
// at the first non-empty strategy and missed articles rendered in alternate
// tile layouts.
type SelectorStrategy struct {
	// Selector is a CSS selector matching anchor elements.
	Selector string

	// Source labels the strategy in logs and warnings.
	Source string
}

// Channel holds the fixed document-level fields of the generated feed.
type Channel struct {
	Title       string
	Link        string
	Description string
	TTLMinutes  int
}

// Config is the immutable configuration for one run. It is constructed once
// at startup and threaded explicitly through every component.
type Config struct {
	// BaseURL is the site origin, e.g. "https://epiotrkow.pl".
	BaseURL string

	// FirstPagePath is the path of the first listing page. Subsequent pages
	// follow PagePathTemplate with page numbers 2..PageCount.
	FirstPagePath    string
	PagePathTemplate string
	PageCount        int

	// Strategies locate article anchors on a listing page.
	Strategies []SelectorStrategy

	// ArticlePathPattern is the canonical article shape: anchors whose path
	// does not match (category links, pagination) are discarded.
	ArticlePathPattern *regexp.Regexp

	// TitleSelector and TitleHeadingSelector flag title elements in tile
	// markup, in fallback order.
	TitleSelector        string
	TitleHeadingSelector string

	// DateSelectors locate a date-bearing element on an article page.
	// ContentSelectors locate lead paragraphs; they are tried as a union in
	// document order.
	DateSelectors    []string
	ContentSelectors []string

	// MaxItems caps the deduplicated output sequence.
	MaxItems int

	// EnrichLimit caps how many leading items get detail-page enrichment.
	EnrichLimit int

	// Concurrency bounds parallel page fetches.
	Concurrency int

	// FetchTimeout applies to each network request independently.
	FetchTimeout time.Duration

	// RequestsPerSecond limits the fetch rate per host.
	RequestsPerSecond float64

	// UserAgent is sent with every request.
	UserAgent string

	// MinParagraphLen skips ornamental paragraph fragments when building a
	// lead. MaxLeadLen is the lead character budget. MinLeadLen rejects
	// terse teasers pulled from structured data or truncated markup.
	MinParagraphLen int
	MaxLeadLen      int
	MinLeadLen      int

	// Months maps localized month names, including diacritic-stripped
	// spellings, to calendar months. DefaultHour is used when the source
	// markup carries a bare date without a time of day.
	Months      map[string]time.Month
	DefaultHour int

	// Channel holds the fixed feed-level output fields.
	Channel Channel
}

// DefaultConfig returns the configuration for epiotrkow.pl. Page 1 lives at
// /news/; pages 2..9 follow the /news/wydarzenia-pN shape. Article links look
// like /news/<slug>,<numeric id>.
func DefaultConfig() Config {
	return Config{
		BaseURL:          "https://epiotrkow.pl",
		FirstPagePath:    "/news/",
		PagePathTemplate: "/news/wydarzenia-p%d",
		PageCount:        9,
		Strategies: []SelectorStrategy{
			{Selector: ".tn-img a[href^='/news/']", Source: "primary-tile"},
			{Selector: ".bg-white a[href^='/news/']", Source: "secondary-tile"},
			{Selector: "a[href^='/news/']", Source: "fallback"},
		},
		ArticlePathPattern:   regexp.MustCompile(`^/news/.+,\d+$`),
		TitleSelector:        ".tn-title",
		TitleHeadingSelector: "h5.tn-title",
		DateSelectors:        []string{".news-date", "time"},
		ContentSelectors:     []string{".news-content p", "article p", ".entry-content p"},
		MaxItems:             255,
		EnrichLimit:          12,
		Concurrency:          4,
		FetchTimeout:         20 * time.Second,
		RequestsPerSecond:    2,
		UserAgent:            "Mozilla/5.0 (+https://github.com/MartiniMK/rss-epiotrkow) RSS static builder",
		MinParagraphLen:      50,
		MaxLeadLen:           800,
		MinLeadLen:           140,
		Months:               polishMonths(),
		DefaultHour:          12,
		Channel: Channel{
			Title:       "epiotrkow.pl – Wydarzenia (p1–p9)",
			Link:        "https://epiotrkow.pl/news/",
			Description: "Automatyczny RSS z list newsów epiotrkow.pl (wydarzenia p1–p9).",
			TTLMinutes:  60,
		},
	}
}

// ListingPages returns the absolute URLs of all configured listing pages.
func (c Config) ListingPages() []string {
	pages := make([]string, 0, c.PageCount)
	pages = append(pages, c.BaseURL+c.FirstPagePath)
	for i := 2; i <= c.PageCount; i++ {
		pages = append(pages, c.BaseURL+fmt.Sprintf(c.PagePathTemplate, i))
	}
	return pages
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.PageCount < 1 {
		return Errorf(EINVALID, "page count must be at least 1")
	}
	if len(c.Strategies) == 0 {
		return Errorf(EINVALID, "at least one selector strategy required")
	}
	if c.ArticlePathPattern == nil {
		return Errorf(EINVALID, "article path pattern required")
	}
	if c.MaxItems < 1 {
		return Errorf(EINVALID, "max items must be at least 1")
	}
	if c.EnrichLimit < 0 {
		return Errorf(EINVALID, "enrich limit must not be negative")
	}
	if c.MaxLeadLen < 1 {
		return Errorf(EINVALID, "lead budget must be at least 1")
	}
	return nil
}

// polishMonths maps Polish genitive month names to months. Diacritic-stripped
// spellings appear in scraped markup often enough to warrant entries.
func polishMonths() map[string]time.Month {
	return map[string]time.Month{
		"stycznia":     time.January,
		"lutego":       time.February,
		"marca":        time.March,
		"kwietnia":     time.April,
		"maja":         time.May,
		"czerwca":      time.June,
		"lipca":        time.July,
		"sierpnia":     time.August,
		"września":     time.September,
		"wrzesnia":     time.September,
		"października": time.October,
		"pazdziernika": time.October,
		"listopada":    time.November,
		"grudnia":      time.December,
	}
}
