package goquery

import (
	"encoding/json"
	"strings"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// structuredDateFields are publish-date field names recognized on an article
// object, tried in order.
var structuredDateFields = []string{"datePublished", "dateCreated", "dateModified"}

// structuredLeadFields are lead-candidate field names, tried in order.
var structuredLeadFields = []string{"articleBody", "description"}

// articleObjects parses one structured-data block and returns every object
// whose declared type mentions an article (Article, NewsArticle, and
// variants). Malformed blocks yield nothing.
func articleObjects(raw string) []map[string]any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	var out []map[string]any
	collectArticles(v, &out)
	return out
}

// collectArticles walks a decoded JSON-LD value, descending into arrays and
// @graph containers.
func collectArticles(v any, out *[]map[string]any) {
	switch t := v.(type) {
	case []any:
		for _, el := range t {
			collectArticles(el, out)
		}
	case map[string]any:
		if isArticleType(t["@type"]) {
			*out = append(*out, t)
		}
		if graph, ok := t["@graph"]; ok {
			collectArticles(graph, out)
		}
	}
}

// isArticleType matches a JSON-LD @type value, which may be a string or a
// list of strings.
func isArticleType(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.Contains(t, "Article")
	case []any:
		for _, el := range t {
			if s, ok := el.(string); ok && strings.Contains(s, "Article") {
				return true
			}
		}
	}
	return false
}

// structuredDate reads the first recognized publish-date field from an
// article object.
func (e *DetailExtractor) structuredDate(obj map[string]any) (time.Time, bool) {
	for _, field := range structuredDateFields {
		s, ok := obj[field].(string)
		if !ok {
			continue
		}
		if t, ok := epiotrkow.ParseDate(s, e.months, e.defaultHour); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// structuredLead reads a lead candidate from an article object. Candidates
// at or below the minimum length are rejected as terse teasers; accepted
// text is bounded by the lead budget.
func (e *DetailExtractor) structuredLead(obj map[string]any) string {
	for _, field := range structuredLeadFields {
		s, ok := obj[field].(string)
		if !ok {
			continue
		}
		s = epiotrkow.CollapseWhitespace(s)
		if len([]rune(s)) <= e.minLead {
			continue
		}
		return epiotrkow.BuildLead([]string{s}, e.minLead, e.maxLead)
	}
	return ""
}
