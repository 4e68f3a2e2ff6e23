package epiotrkow

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// textualDatePattern matches localized dates of the form
// "28 września 2025", optionally followed by a clock time.
var textualDatePattern = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)\s+(\d{4})(?:[,\s]+(\d{1,2}):(\d{2}))?$`)

// ParseDate normalizes a scraped date string to a UTC instant. Two input
// forms are recognized: ISO-8601-like timestamps (with or without a Z
// suffix) and localized textual dates matched against the months table.
// Textual dates without a clock time default to defaultHour.
//
// Every parsed timestamp is treated as UTC regardless of source; the
// upstream markup mixes zone conventions and a single policy keeps item
// ordering and output deterministic. Unparseable input yields ok=false,
// never an error.
func ParseDate(s string, months map[string]time.Month, defaultHour int) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
		return t.UTC(), true
	}

	m := textualDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := months[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	hour, minute := defaultHour, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if hour > 23 || minute > 59 {
			hour, minute = defaultHour, 0
		}
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC), true
}
