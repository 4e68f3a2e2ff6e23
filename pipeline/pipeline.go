// Package pipeline orchestrates the feed build: scanning listing pages,
// deduplicating items, enriching the leading items from their article
// pages, and rendering and writing the final document.
package pipeline

import (
	"context"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// WarningKind classifies a non-fatal problem observed during a run.
type WarningKind string

const (
	// WarnFetchFailure marks a listing page that could not be retrieved.
	WarnFetchFailure WarningKind = "fetch_failure"

	// WarnParseFailure marks a listing page whose markup could not be scanned.
	WarnParseFailure WarningKind = "parse_failure"

	// WarnSelectorMiss marks a listing page where no strategy matched
	// anything, usually a sign of a site redesign.
	WarnSelectorMiss WarningKind = "selector_miss"

	// WarnEnrichFailure marks an article whose detail page could not be
	// enriched. The item stays in the feed with its listing-pass fields.
	WarnEnrichFailure WarningKind = "enrich_failure"
)

// Warning records one non-fatal problem. Runs degrade gracefully: a
// warning never removes items already collected.
type Warning struct {
	Kind WarningKind
	URL  string
	Err  error
}

// Report summarizes one completed run.
type Report struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	// Items is the final deduplicated, capped item sequence, in the order
	// it was rendered.
	Items []*epiotrkow.Item

	// Enriched counts items whose detail enrichment contributed data.
	Enriched int

	// Warnings lists every non-fatal problem, in pipeline order.
	Warnings []Warning

	// BuildTime is the timestamp stamped into the document.
	BuildTime time.Time
}

// Pipeline wires the stages of a feed build together. All fields except
// Now must be set; Now defaults to time.Now and exists for tests.
type Pipeline struct {
	Fetcher   epiotrkow.Fetcher
	Collector epiotrkow.ListingCollector
	Enricher  epiotrkow.Enricher
	Renderer  epiotrkow.FeedRenderer
	Writer    epiotrkow.FeedWriter
	Config    epiotrkow.Config
	Now       func() time.Time
}

// pageResult holds the outcome of scanning a single listing page.
type pageResult struct {
	url      string
	items    []*epiotrkow.Item
	fetchErr error
	scanErr  error
}

// Run executes a complete feed build and returns its report. The run
// fails only when every listing page is unreachable or when the final
// document cannot be rendered or written; everything else degrades to
// warnings.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}

	items, warnings, err := p.Collect(ctx)
	if err != nil {
		return nil, err
	}
	report.Warnings = warnings
	report.Items = items

	report.Enriched = p.enrich(ctx, report)

	report.BuildTime = p.now().UTC()
	doc, err := p.Renderer.Render(p.Config.Channel, report.Items, report.BuildTime)
	if err != nil {
		return nil, err
	}
	if err := p.Writer.Write(ctx, doc); err != nil {
		return nil, epiotrkow.Errorf(epiotrkow.EUNAVAILABLE, "writing feed: %v", err)
	}

	return report, nil
}

// Collect scans all configured listing pages and returns the
// deduplicated, capped item sequence. Pages are fetched concurrently but
// the result preserves configured page order, so repeated runs over the
// same markup produce the same sequence.
func (p *Pipeline) Collect(ctx context.Context) ([]*epiotrkow.Item, []Warning, error) {
	pages := p.Config.ListingPages()
	results := make([]pageResult, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			results[i] = p.scanPage(gctx, page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	fetched := 0
	seen := make(map[string]bool)
	var items []*epiotrkow.Item

	for _, res := range results {
		switch {
		case res.fetchErr != nil:
			warnings = append(warnings, Warning{Kind: WarnFetchFailure, URL: res.url, Err: res.fetchErr})
			continue
		case res.scanErr != nil:
			fetched++
			warnings = append(warnings, Warning{Kind: WarnParseFailure, URL: res.url, Err: res.scanErr})
			continue
		}

		fetched++
		if len(res.items) == 0 {
			warnings = append(warnings, Warning{Kind: WarnSelectorMiss, URL: res.url})
			continue
		}
		for _, item := range res.items {
			if seen[item.URL] {
				continue
			}
			seen[item.URL] = true
			if len(items) < p.Config.MaxItems {
				items = append(items, item)
			}
		}
	}

	if fetched == 0 {
		return nil, nil, epiotrkow.Errorf(epiotrkow.EUNAVAILABLE, "all %d listing pages unreachable", len(pages))
	}

	return items, warnings, nil
}

// scanPage fetches one listing page and runs the collector over it.
func (p *Pipeline) scanPage(ctx context.Context, page string) pageResult {
	res := pageResult{url: page}

	html, err := p.Fetcher.Fetch(ctx, page)
	if err != nil {
		res.fetchErr = err
		return res
	}

	items, err := p.Collector.Collect(html, page)
	if err != nil {
		res.scanErr = err
		return res
	}
	res.items = items
	return res
}

// enrich runs detail-page enrichment over the leading items, in place.
// Each item is enriched at most once; a failed enrichment leaves the
// item untouched and records a warning.
func (p *Pipeline) enrich(ctx context.Context, report *Report) int {
	limit := p.Config.EnrichLimit
	if limit > len(report.Items) {
		limit = len(report.Items)
	}
	if limit <= 0 || p.Enricher == nil {
		return 0
	}

	type enrichOutcome struct {
		result epiotrkow.EnrichmentResult
		err    error
	}
	outcomes := make([]enrichOutcome, limit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i := 0; i < limit; i++ {
		i := i
		g.Go(func() error {
			res, err := p.Enricher.Enrich(gctx, report.Items[i].URL)
			outcomes[i] = enrichOutcome{result: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	enriched := 0
	for i := 0; i < limit; i++ {
		item := report.Items[i]
		out := outcomes[i]
		if out.err != nil {
			report.Warnings = append(report.Warnings, Warning{Kind: WarnEnrichFailure, URL: item.URL, Err: out.err})
			continue
		}
		if out.result.Empty() {
			continue
		}
		item.ApplyEnrichment(out.result)
		enriched++
	}
	return enriched
}

func (p *Pipeline) concurrency() int {
	if p.Config.Concurrency > 0 {
		return p.Config.Concurrency
	}
	return 4
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
