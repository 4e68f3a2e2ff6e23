package goquery

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// Ensure DetailExtractor implements epiotrkow.Enricher at compile time.
var _ epiotrkow.Enricher = (*DetailExtractor)(nil)

// metaDateSelectors are publish-time meta tags tried in order on the primary
// page when structured data yields no date.
var metaDateSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="article:published_time"]`,
	`meta[itemprop="datePublished"]`,
	`meta[name="date"]`,
}

// DetailExtractor enriches items with a publish timestamp and a lead summary
// extracted from their own article pages.
type DetailExtractor struct {
	fetcher          epiotrkow.Fetcher
	months           map[string]time.Month
	defaultHour      int
	minLead          int
	minParagraph     int
	maxLead          int
	dateSelectors    []string
	contentSelectors []string
}

// NewDetailExtractor creates a DetailExtractor. The fetcher is used for the
// article page itself and for its linked alternate (AMP) page.
func NewDetailExtractor(fetcher epiotrkow.Fetcher, cfg epiotrkow.Config) *DetailExtractor {
	return &DetailExtractor{
		fetcher:          fetcher,
		months:           cfg.Months,
		defaultHour:      cfg.DefaultHour,
		minLead:          cfg.MinLeadLen,
		minParagraph:     cfg.MinParagraphLen,
		maxLead:          cfg.MaxLeadLen,
		dateSelectors:    cfg.DateSelectors,
		contentSelectors: cfg.ContentSelectors,
	}
}

// Enrich fetches the article page and runs the extraction chain in priority
// order, stopping as soon as both a date and a lead are obtained:
//
//  1. structured-data blocks on the primary page
//  2. the linked alternate (AMP) page, structured data plus paragraphs
//  3. publish-time meta tags and date-bearing elements, paragraph lead,
//     description meta tag
//
// A fetch failure for the primary page aborts enrichment for this item only.
// Malformed sources are skipped; the chain proceeds to the next one.
func (e *DetailExtractor) Enrich(ctx context.Context, pageURL string) (epiotrkow.EnrichmentResult, error) {
	var res epiotrkow.EnrichmentResult

	html, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return res, epiotrkow.Errorf(epiotrkow.EUNAVAILABLE, "fetch article page %s: %v", pageURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return res, epiotrkow.Errorf(epiotrkow.EINVALID, "parse article page %s: %v", pageURL, err)
	}

	e.applyStructuredData(doc, &res)

	if res.PublishedAt == nil || res.Lead == "" {
		e.applyAlternatePage(ctx, doc, pageURL, &res)
	}

	if res.PublishedAt == nil {
		e.applyDateHeuristics(doc, &res)
	}
	if res.Lead == "" {
		res.Lead = epiotrkow.BuildLead(e.paragraphs(doc), e.minParagraph, e.maxLead)
	}
	if res.Lead == "" {
		res.Lead = descriptionMeta(doc)
	}

	res.Lead = epiotrkow.CleanLead(res.Lead, e.minLead)
	return res, nil
}

// applyStructuredData fills missing fields from the page's structured-data
// blocks.
func (e *DetailExtractor) applyStructuredData(doc *goquery.Document, res *epiotrkow.EnrichmentResult) {
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, obj := range articleObjects(s.Text()) {
			if res.PublishedAt == nil {
				if t, ok := e.structuredDate(obj); ok {
					res.PublishedAt = &t
				}
			}
			if res.Lead == "" {
				res.Lead = e.structuredLead(obj)
			}
		}
		return res.PublishedAt == nil || res.Lead == ""
	})
}

// applyAlternatePage locates the linked alternate (AMP) page and repeats
// structured-data extraction plus paragraph lead assembly against it.
// The alternate page is best-effort: any failure leaves the result as is.
func (e *DetailExtractor) applyAlternatePage(ctx context.Context, doc *goquery.Document, pageURL string, res *epiotrkow.EnrichmentResult) {
	href, ok := doc.Find(`link[rel="amphtml"]`).First().Attr("href")
	if !ok || href == "" {
		return
	}
	ampURL := resolveAgainst(pageURL, href)
	if ampURL == "" {
		return
	}

	html, err := e.fetcher.Fetch(ctx, ampURL)
	if err != nil {
		return
	}
	ampDoc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return
	}

	e.applyStructuredData(ampDoc, res)
	if res.Lead == "" {
		res.Lead = epiotrkow.BuildLead(e.paragraphs(ampDoc), e.minParagraph, e.maxLead)
	}
}

// applyDateHeuristics reads publish-time meta tags, then date-bearing
// elements, parsing their values through the date normalizer.
func (e *DetailExtractor) applyDateHeuristics(doc *goquery.Document, res *epiotrkow.EnrichmentResult) {
	for _, sel := range metaDateSelectors {
		content, ok := doc.Find(sel).First().Attr("content")
		if !ok {
			continue
		}
		if t, ok := epiotrkow.ParseDate(content, e.months, e.defaultHour); ok {
			res.PublishedAt = &t
			return
		}
	}

	for _, sel := range e.dateSelectors {
		el := doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		text := el.AttrOr("datetime", "")
		if text == "" {
			text = epiotrkow.CollapseWhitespace(el.Text())
		}
		if t, ok := epiotrkow.ParseDate(text, e.months, e.defaultHour); ok {
			res.PublishedAt = &t
			return
		}
	}
}

// paragraphs returns the text of every paragraph matched by the content
// selectors, as a union in document order.
func (e *DetailExtractor) paragraphs(doc *goquery.Document) []string {
	var out []string
	doc.Find(strings.Join(e.contentSelectors, ", ")).Each(func(_ int, p *goquery.Selection) {
		out = append(out, p.Text())
	})
	return out
}

// descriptionMeta returns the page's generic description meta content.
func descriptionMeta(doc *goquery.Document) string {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if c := epiotrkow.CollapseWhitespace(content); c != "" {
				return c
			}
		}
	}
	return ""
}

// resolveAgainst resolves href against pageURL, returning "" when either
// cannot be parsed.
func resolveAgainst(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
