// Package htmltext reduces feed-provided HTML fragments to plain text.
package htmltext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	spaceRuns    = regexp.MustCompile(`[ \t]+`)
	paddedBreaks = regexp.MustCompile(` ?\n ?`)
	blankRuns    = regexp.MustCompile(`\n{3,}`)
)

// Strip removes all markup from raw and returns normalised plain text:
// entities decoded, inline whitespace runs collapsed to single spaces,
// and at most one blank line between paragraphs. Empty or malformed
// input never fails; it degrades to best-effort text extraction.
func Strip(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := raw
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		var b strings.Builder
		for _, root := range doc.Nodes {
			collectText(root, &b)
		}
		text = b.String()
	}

	text = spaceRuns.ReplaceAllString(text, " ")
	text = paddedBreaks.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// collectText appends every text node under n, separated by single
// spaces so adjacent elements do not run together.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
