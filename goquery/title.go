package goquery

import (
	"github.com/PuerkitoBio/goquery"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// resolveTitle runs the title fallback chain for one anchor. Steps are tried
// in order and the first non-empty, whitespace-collapsed result wins:
//
//  1. a title-classed descendant of the anchor
//  2. a title-classed heading descendant
//  3. the anchor's own text content
//  4. the nearest following title-classed element outside the anchor
//     (some tiles render the title as a sibling, not a descendant)
//  5. the alt attribute of an image inside the anchor
//
// When every step fails the placeholder title is assigned.
func (c *ListingCollector) resolveTitle(doc *goquery.Document, a *goquery.Selection) string {
	steps := []func() string{
		func() string { return a.Find(c.titleSel).First().Text() },
		func() string { return a.Find(c.headingSel).First().Text() },
		func() string { return a.Text() },
		func() string { return followingText(doc, a, c.titleSel) },
		func() string { return a.Find("img").First().AttrOr("alt", "") },
	}

	for _, step := range steps {
		if title := epiotrkow.CollapseWhitespace(step()); title != "" {
			return title
		}
	}
	return epiotrkow.PlaceholderTitle
}

// followingText returns the text of the nearest element matching sel that
// comes after the anchor in document order, skipping the anchor's own
// descendants.
func followingText(doc *goquery.Document, a *goquery.Selection, sel string) string {
	if len(a.Nodes) == 0 {
		return ""
	}
	ref := a.Nodes[0]

	var text string
	doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Nodes[0]
		if isDescendant(n, ref) || !isAfter(n, ref) {
			return true
		}
		text = s.Text()
		return false
	})
	return text
}
