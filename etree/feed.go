// Package etree renders RSS 2.0 feed documents using the beevik/etree
// XML library.
package etree

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// mrssNamespace is the Media RSS namespace declared on the root element
// whenever at least one item carries an image.
const mrssNamespace = "http://search.yahoo.com/mrss/"

// Ensure FeedRenderer implements epiotrkow.FeedRenderer.
var _ epiotrkow.FeedRenderer = (*FeedRenderer)(nil)

// FeedRenderer builds RSS 2.0 documents with Media RSS extensions.
type FeedRenderer struct {
	indent int
}

// Option configures a FeedRenderer.
type Option func(*FeedRenderer)

// WithIndent sets the number of spaces used to indent the rendered
// document. Zero disables indentation.
func WithIndent(spaces int) Option {
	return func(r *FeedRenderer) {
		r.indent = spaces
	}
}

// NewFeedRenderer creates a new FeedRenderer.
func NewFeedRenderer(opts ...Option) *FeedRenderer {
	r := &FeedRenderer{indent: 2}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the complete RSS document for the given channel and
// items. Items missing a publication date fall back to buildTime so
// every entry carries a pubDate.
func (r *FeedRenderer) Render(channel epiotrkow.Channel, items []*epiotrkow.Item, buildTime time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	if hasImages(items) {
		rss.CreateAttr("xmlns:media", mrssNamespace)
	}

	ch := rss.CreateElement("channel")
	ch.CreateElement("title").SetText(channel.Title)
	ch.CreateElement("link").SetText(channel.Link)
	ch.CreateElement("description").SetText(channel.Description)
	ch.CreateElement("lastBuildDate").SetText(buildTime.UTC().Format(time.RFC1123Z))
	if channel.TTLMinutes > 0 {
		ch.CreateElement("ttl").SetText(fmt.Sprintf("%d", channel.TTLMinutes))
	}

	for _, item := range items {
		r.renderItem(ch, item, buildTime)
	}

	if r.indent > 0 {
		doc.Indent(r.indent)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, epiotrkow.Errorf(epiotrkow.EINTERNAL, "rendering feed: %v", err)
	}
	return out, nil
}

func (r *FeedRenderer) renderItem(ch *etree.Element, item *epiotrkow.Item, buildTime time.Time) {
	el := ch.CreateElement("item")

	title := el.CreateElement("title")
	title.SetCData(item.Title)

	el.CreateElement("link").SetText(item.URL)

	guid := el.CreateElement("guid")
	guid.CreateAttr("isPermaLink", "false")
	guid.SetText(item.ID)

	pubDate := buildTime
	if item.PublishedAt != nil {
		pubDate = *item.PublishedAt
	}
	el.CreateElement("pubDate").SetText(pubDate.UTC().Format(time.RFC1123Z))

	desc := el.CreateElement("description")
	desc.SetCData(itemDescription(item))

	if item.ImageURL != "" {
		enclosure := el.CreateElement("enclosure")
		enclosure.CreateAttr("url", item.ImageURL)
		enclosure.CreateAttr("type", item.ImageMIMEType)

		content := el.CreateElement("media:content")
		content.CreateAttr("url", item.ImageURL)
		content.CreateAttr("type", item.ImageMIMEType)
		content.CreateAttr("medium", "image")

		thumb := el.CreateElement("media:thumbnail")
		thumb.CreateAttr("url", item.ImageURL)
	}
}

// itemDescription builds the HTML description fragment: the image (when
// present) followed by the lead paragraph, falling back to the title
// when no lead survived cleaning.
func itemDescription(item *epiotrkow.Item) string {
	text := item.Lead
	if text == "" {
		text = item.Title
	}
	if item.ImageURL != "" {
		return fmt.Sprintf(`<img src="%s"/><p>%s</p>`, item.ImageURL, text)
	}
	return fmt.Sprintf("<p>%s</p>", text)
}

func hasImages(items []*epiotrkow.Item) bool {
	for _, item := range items {
		if item.ImageURL != "" {
			return true
		}
	}
	return false
}
