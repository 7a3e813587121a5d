package md

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ImportOptions configures the HTML to markdown conversion.
type ImportOptions struct {
	// Selector limits the conversion to the first element matching this CSS
	// selector, e.g. "article" or "main". Empty converts the whole input.
	Selector string
}

// droppedElements never carry page content.
const droppedElements = "script, style, noscript, template"

// FromHTML converts an HTML page or fragment to markdown.
func FromHTML(html string) (string, error) {
	return FromHTMLWithOptions(html, ImportOptions{})
}

// FromHTMLWithOptions converts HTML to markdown with configurable options.
func FromHTMLWithOptions(html string, opts ImportOptions) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	content, err := selectContent(html, opts.Selector)
	if err != nil {
		return "", err
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}

	// Clean up the output - trim whitespace
	return strings.TrimSpace(markdown), nil
}

// selectContent strips non-content elements and narrows the document to
// selector when one is given.
func selectContent(html, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find(droppedElements).Remove()

	root := doc.Find("body")
	if selector != "" {
		root = doc.Find(selector).First()
		if root.Length() == 0 {
			return "", fmt.Errorf("selector %q matched no element", selector)
		}
	}

	out, err := root.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize html: %w", err)
	}
	return out, nil
}
