package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Scope narrows an HTML document to the elements matching a CSS selector.
// The outer HTML of each match is concatenated in document order. An empty
// selector returns the document unchanged. matched reports how many
// elements were selected.
func Scope(htmlContent, selector string) (scoped string, matched int, err error) {
	if strings.TrimSpace(selector) == "" {
		return htmlContent, 0, nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", 0, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var b strings.Builder
	var scopeErr error
	sel := doc.FindMatcher(matcher)
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		outer, err := goquery.OuterHtml(s)
		if err != nil {
			scopeErr = fmt.Errorf("failed to render match %d of %q: %w", i, selector, err)
			return false
		}
		b.WriteString(outer)
		return true
	})
	if scopeErr != nil {
		return "", 0, scopeErr
	}

	return b.String(), sel.Length(), nil
}
