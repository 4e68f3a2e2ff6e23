package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/MartiniMK/rss-epiotrkow/pipeline"
)

// Dependencies holds everything a command needs to run.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   epiotrkow.Config
	Pipeline *pipeline.Pipeline
	Logger   *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log every fetch and enrichment"`
	Timeout time.Duration `short:"t" default:"0" help:"Deadline for the whole run (0 = none)"`

	Generate GenerateCmd `cmd:"" help:"Build the feed and write it to disk"`
	Preview  PreviewCmd  `cmd:"" help:"Scan listing pages and print collected articles without writing"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Output string `short:"o" default:"docs/rss.xml" help:"Output file path"`
	Site   string `help:"Site origin override (e.g. for a mirror)"`
	Pages  int    `short:"p" default:"0" help:"Number of listing pages to scan (0 = configured default)"`
	Enrich int    `short:"e" default:"-1" help:"How many leading items to enrich (-1 = configured default)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Site  string `help:"Site origin override (e.g. for a mirror)"`
	Pages int    `short:"p" default:"0" help:"Number of listing pages to scan (0 = configured default)"`
}
