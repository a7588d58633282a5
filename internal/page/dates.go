package page

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// visibleDateWindow bounds how much plain text is scanned for a dateline.
const visibleDateWindow = 2500

var datelineExpr = regexp.MustCompile(`\b(\d{1,2}\s+\w+\s+\d{4})\b`)

// Layouts carrying their own zone information.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
}

// Layouts without zone information; interpreted in the reference timezone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// VisibleDate returns the first human-readable dateline found in the opening
// slice of plain text, verbatim and unparsed. Empty when none is printed.
func VisibleDate(text string) string {
	window := text
	if len(window) > visibleDateWindow {
		window = window[:visibleDateWindow]
	}
	return datelineExpr.FindString(window)
}

// MetaPublishTime returns the raw article:published_time meta value, or "".
func MetaPublishTime(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	content, _ := doc.Find(`meta[property="article:published_time"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// ToLocalDate parses a date-time string and reduces it to a calendar date in
// loc. Values without zone information are assumed to already be local.
// The second return is false when the value cannot be parsed.
func ToLocalDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" || loc == nil {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return dateOnly(t.In(loc), loc), true
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return dateOnly(t, loc), true
		}
	}

	return time.Time{}, false
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
