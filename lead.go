package epiotrkow

import "strings"

// Ellipsis terminates a lead that was truncated at the character budget.
const Ellipsis = "…"

// CollapseWhitespace trims s and replaces every whitespace run with a single
// space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// BuildLead assembles a bounded summary from paragraph fragments. Paragraphs
// shorter than minParagraph runes are skipped as ornamental. Accepted
// paragraphs are joined with single spaces until the budget (in runes) is
// reached; overflow is truncated at the last whitespace boundary before the
// limit and terminated with an ellipsis. Returns an empty string when no
// paragraph qualifies.
func BuildLead(paragraphs []string, minParagraph, budget int) string {
	var b strings.Builder
	for _, p := range paragraphs {
		p = CollapseWhitespace(p)
		if len([]rune(p)) < minParagraph {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p)
		if len([]rune(b.String())) >= budget {
			break
		}
	}

	lead := b.String()
	runes := []rune(lead)
	if len(runes) <= budget {
		return lead
	}

	// Truncate at a word boundary before the budget.
	cut := string(runes[:budget])
	if idx := strings.LastIndexAny(cut, " \t"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:") + Ellipsis
}

// CleanLead post-processes an extracted lead: whitespace is collapsed and a
// short fragment lacking terminal punctuation is discarded as a truncated
// teaser rather than a genuine summary.
func CleanLead(lead string, minLen int) string {
	lead = CollapseWhitespace(lead)
	if lead == "" {
		return ""
	}
	if len([]rune(lead)) >= minLen {
		return lead
	}
	if strings.HasSuffix(lead, ".") || strings.HasSuffix(lead, "!") ||
		strings.HasSuffix(lead, "?") || strings.HasSuffix(lead, Ellipsis) {
		return lead
	}
	return ""
}
