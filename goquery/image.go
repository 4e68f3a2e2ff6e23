package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxAncestorLevels bounds the upward walk when an anchor carries no image
// of its own; tile images usually sit one or two containers up.
const maxAncestorLevels = 4

// genericImageMIME is emitted for image URLs with an unrecognized extension.
const genericImageMIME = "image/*"

var mimeByExt = map[string]string{
	".webp": "image/webp",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// resolveImage runs the image fallback chain for one anchor: an image inside
// the anchor, then images inside up to four ancestor levels, then the nearest
// image following the anchor in document order. The first usable (non-data)
// source wins; absence leaves the image fields empty.
func resolveImage(doc *goquery.Document, a *goquery.Selection, base *url.URL) (string, string) {
	if src := firstUsableImage(a); src != "" {
		return resolveImageURL(base, src)
	}

	ancestor := a.Parent()
	for i := 0; i < maxAncestorLevels && ancestor.Length() > 0; i++ {
		if src := firstUsableImage(ancestor); src != "" {
			return resolveImageURL(base, src)
		}
		ancestor = ancestor.Parent()
	}

	if len(a.Nodes) > 0 {
		ref := a.Nodes[0]
		var src string
		doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			if !isAfter(img.Nodes[0], ref) {
				return true
			}
			if v := imageSource(img); v != "" {
				src = v
				return false
			}
			return true
		})
		if src != "" {
			return resolveImageURL(base, src)
		}
	}

	return "", ""
}

// firstUsableImage returns the source of the first image under s that has a
// usable source attribute.
func firstUsableImage(s *goquery.Selection) string {
	var src string
	s.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if v := imageSource(img); v != "" {
			src = v
			return false
		}
		return true
	})
	return src
}

// imageSource extracts a usable source from an image element, preferring the
// lazy-load attribute over the standard one and rejecting inline data URLs.
func imageSource(img *goquery.Selection) string {
	if img.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"data-src", "src"} {
		v := strings.TrimSpace(img.AttrOr(attr, ""))
		if v != "" && !strings.HasPrefix(v, "data:") {
			return v
		}
	}
	return ""
}

// resolveImageURL resolves src against base and derives the MIME type from
// the file extension.
func resolveImageURL(base *url.URL, src string) (string, string) {
	ref, err := url.Parse(src)
	if err != nil {
		return "", ""
	}
	u := base.ResolveReference(ref)
	return u.String(), mimeForPath(u.Path)
}

func mimeForPath(p string) string {
	if mime, ok := mimeByExt[strings.ToLower(path.Ext(p))]; ok {
		return mime
	}
	return genericImageMIME
}
