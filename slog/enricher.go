package slog

import (
	"context"
	"log/slog"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// Ensure LoggingEnricher implements epiotrkow.Enricher.
var _ epiotrkow.Enricher = (*LoggingEnricher)(nil)

// LoggingEnricher wraps an Enricher with per-article logging.
type LoggingEnricher struct {
	next   epiotrkow.Enricher
	logger *slog.Logger
}

// NewLoggingEnricher creates a new LoggingEnricher.
func NewLoggingEnricher(next epiotrkow.Enricher, logger *slog.Logger) *LoggingEnricher {
	return &LoggingEnricher{next: next, logger: logger}
}

// Enrich delegates to the wrapped enricher and logs the outcome.
func (e *LoggingEnricher) Enrich(ctx context.Context, url string) (res epiotrkow.EnrichmentResult, err error) {
	defer func(begin time.Time) {
		e.logger.Info("enrich",
			"url", url,
			"date", res.PublishedAt != nil,
			"lead_len", len(res.Lead),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Enrich(ctx, url)
}
