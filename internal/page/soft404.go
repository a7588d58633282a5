package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// soft404Window bounds how much raw markup is scanned alongside the title.
const soft404Window = 1200

var soft404Phrases = []string{
	"page not found",
	"404",
	"requested page",
	"हम इस पेज को",
}

// IsSoft404 flags pages that answer HTTP 200 but render a "not found" body.
// Status codes alone cannot catch these, so the title plus the opening slice
// of markup is scanned for the known phrases.
func IsSoft404(html string) bool {
	var title string
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		title = doc.Find("title").First().Text()
	}

	window := html
	if len(window) > soft404Window {
		window = window[:soft404Window]
	}

	blob := strings.ToLower(title + window)
	for _, phrase := range soft404Phrases {
		if strings.Contains(blob, phrase) {
			return true
		}
	}
	return false
}
