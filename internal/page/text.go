// Package page holds the pure per-page analyzers: markup flattening,
// soft-404 detection, publish-date resolution, and content fingerprinting.
package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RawText flattens the whole document into space-normalized plain text.
func RawText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script,style,noscript").Remove()
	return normalizeSpace(doc.Text())
}

// ReadableText approximates a reader-mode extraction: the article container
// when one exists, paragraph text otherwise, with navigation chrome removed.
func ReadableText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script,style,noscript,nav,header,footer,aside,form").Remove()

	if article := doc.Find("article").First(); article.Length() > 0 {
		return normalizeSpace(article.Text())
	}

	var sb strings.Builder
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		sb.WriteString(p.Text())
		sb.WriteString(" ")
	})
	if sb.Len() > 0 {
		return normalizeSpace(sb.String())
	}

	return normalizeSpace(doc.Text())
}

// WordCount counts whitespace-separated tokens in plain text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
