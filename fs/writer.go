// Package fs provides file-based output for rendered feeds.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// Ensure FeedWriter implements epiotrkow.FeedWriter at compile time.
var _ epiotrkow.FeedWriter = (*FeedWriter)(nil)

// FeedWriter writes feed documents to a file with atomic replace
// semantics. The document is written to a sibling temp file first and
// renamed into place, so readers never observe a partially written feed.
type FeedWriter struct {
	path string
}

// NewFeedWriter creates a new FeedWriter targeting the given file path.
func NewFeedWriter(path string) *FeedWriter {
	return &FeedWriter{path: path}
}

// Path returns the destination file path.
func (w *FeedWriter) Path() string {
	return w.path
}

// Write stores the document at the configured path, creating parent
// directories as needed.
func (w *FeedWriter) Write(ctx context.Context, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, doc, 0644); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}

	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing feed: %w", err)
	}
	return nil
}
