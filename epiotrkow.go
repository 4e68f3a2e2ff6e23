// Package epiotrkow generates a static RSS feed from the epiotrkow.pl news
// listing. It scans a fixed set of paginated listing pages for article links,
// resolves titles and images through fallback chains, enriches a capped prefix
// of the result with publish dates and lead summaries from the article pages,
// and serializes everything into an RSS 2.0 document with media extensions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, etree/).
package epiotrkow
