package mock

import (
	"context"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

var _ epiotrkow.FeedRenderer = (*FeedRenderer)(nil)

// FeedRenderer is a mock implementation of epiotrkow.FeedRenderer.
type FeedRenderer struct {
	RenderFn func(channel epiotrkow.Channel, items []*epiotrkow.Item, buildTime time.Time) ([]byte, error)
}

func (r *FeedRenderer) Render(channel epiotrkow.Channel, items []*epiotrkow.Item, buildTime time.Time) ([]byte, error) {
	return r.RenderFn(channel, items, buildTime)
}

var _ epiotrkow.FeedWriter = (*FeedWriter)(nil)

// FeedWriter is a mock implementation of epiotrkow.FeedWriter.
type FeedWriter struct {
	WriteFn func(ctx context.Context, doc []byte) error
}

func (w *FeedWriter) Write(ctx context.Context, doc []byte) error {
	return w.WriteFn(ctx, doc)
}
