// Command rss-epiotrkow builds an RSS feed from the epiotrkow.pl news
// listings. Each run scans the listing pages, deduplicates the collected
// articles, enriches the leading ones from their own pages and writes a
// complete feed document. Nothing persists between runs.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/MartiniMK/rss-epiotrkow/etree"
	"github.com/MartiniMK/rss-epiotrkow/fs"
	"github.com/MartiniMK/rss-epiotrkow/goquery"
	epihttp "github.com/MartiniMK/rss-epiotrkow/http"
	"github.com/MartiniMK/rss-epiotrkow/pipeline"
	epislog "github.com/MartiniMK/rss-epiotrkow/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is the run configuration. Flags override individual fields.
	Config epiotrkow.Config

	// Fetcher overrides the HTTP fetcher when set. Used by tests.
	Fetcher epiotrkow.Fetcher

	// RetryDelays overrides the fetch retry backoff. Nil means the
	// standard delays; used by tests to avoid real waits.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: epiotrkow.DefaultConfig(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rss-epiotrkow"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rss-epiotrkow --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	cfg := m.Config
	applyOverrides(&cfg, cli, cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	if cli.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.Timeout)
		defer cancel()
		deps.Ctx = ctx
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = epihttp.NewFetcher(
			epihttp.WithTimeout(cfg.FetchTimeout),
			epihttp.WithUserAgent(cfg.UserAgent),
		)
	}
	limiter := pipeline.NewHostLimiter(cfg.RequestsPerSecond)
	throttled := pipeline.NewThrottledFetcher(fetcher, limiter, m.RetryDelays)

	var runFetcher epiotrkow.Fetcher = throttled
	var enricher epiotrkow.Enricher = goquery.NewDetailExtractor(throttled, cfg)
	if cli.Verbose {
		runFetcher = epislog.NewLoggingFetcher(throttled, deps.Logger)
		enricher = epislog.NewLoggingEnricher(goquery.NewDetailExtractor(runFetcher, cfg), deps.Logger)
	}
	defer runFetcher.Close()

	deps.Pipeline = &pipeline.Pipeline{
		Fetcher:   runFetcher,
		Collector: goquery.NewListingCollector(cfg),
		Enricher:  enricher,
		Renderer:  etree.NewFeedRenderer(),
		Writer:    fs.NewFeedWriter(cli.Generate.Output),
		Config:    cfg,
	}

	return kongCtx.Run(deps)
}

// applyOverrides folds command flags into the run configuration.
func applyOverrides(cfg *epiotrkow.Config, cli *CLI, cmd string) {
	site, pages := cli.Preview.Site, cli.Preview.Pages
	if cmd == "generate" {
		site, pages = cli.Generate.Site, cli.Generate.Pages
		if cli.Generate.Enrich >= 0 {
			cfg.EnrichLimit = cli.Generate.Enrich
		}
	}
	if site != "" {
		cfg.BaseURL = site
	}
	if pages > 0 {
		cfg.PageCount = pages
	}
}
