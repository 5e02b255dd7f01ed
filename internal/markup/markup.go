// Package markup turns rich-text field values into plain text for search,
// grouping counts and card excerpts.
package markup

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Ellipsis is appended by Truncate when text is cut.
const Ellipsis = "..."

// Strip removes every tag from s and decodes entities, keeping only text
// content in document order. Adjacent block elements are not separated.
func Strip(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Truncate cuts s to at most n runes and appends Ellipsis when anything was
// removed.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + Ellipsis
		}
		i++
	}
	return s
}

// Excerpt strips markup before truncating, so a tag is never cut in half.
func Excerpt(s string, n int) string {
	return Truncate(Strip(s), n)
}
