package epiotrkow

import (
	"context"
	"time"
)

// FeedRenderer serializes the final item sequence into a syndication
// document. buildTime stamps the document and substitutes for items without
// a publish date; it is never written back onto an item.
type FeedRenderer interface {
	Render(channel Channel, items []*Item, buildTime time.Time) ([]byte, error)
}

// FeedWriter persists a serialized feed document.
type FeedWriter interface {
	Write(ctx context.Context, doc []byte) error
}
