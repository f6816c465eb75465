package extract

import (
	"regexp"
	"time"
)

// dateTokenRE matches a calendar-date-shaped token: d{1,2} sep d{1,2} sep
// d{2,4} with ./- separators.
var dateTokenRE = regexp.MustCompile(`\b(\d{1,2}[./-]\d{1,2}[./-]\d{2,4})\b`)

// dateLayouts are tried in order by parseGenericDate. Month-first layouts
// come before day-first ones, mirroring invariant-culture parsing upstream.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02.01.2006",
	"2.1.2006",
	"02.01.06",
	"01-02-2006",
	"1-2-2006",
	"01-02-06",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// parseGenericDate parses a free-form date string, returning UTC midnight
// for date-only layouts. Failure is a soft-miss.
func parseGenericDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// firstDateInText scans text for the first date-shaped token and parses it.
// First match wins; there is no ranking among multiple candidates.
func firstDateInText(text string) (time.Time, bool) {
	m := dateTokenRE.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	return parseGenericDate(m[1])
}
