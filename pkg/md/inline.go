// inline.go implements the inline tokenizer: block text in, typed spans out.
package md

import (
	"log"
	"regexp"
	"strings"
)

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// TextToSpans tokenizes one block's cleaned text. Passes run in a fixed
// order (bold, italic, code, images, links) and each pass only re-splits
// spans that are still plain text. The result is never empty: empty input
// yields a single empty text span.
func TextToSpans(text string) []Span {
	spans := []Span{TextSpan(text)}
	spans = SplitDelimiter(spans, "**", SpanBold)
	spans = SplitDelimiter(spans, "*", SpanItalic)
	spans = SplitDelimiter(spans, "`", SpanCode)
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans
}

// SplitDelimiter splits every text span on delimiter. Odd-indexed fragments
// become spans of the given kind, even-indexed fragments stay text and are
// dropped when empty. An unmatched delimiter keeps the literal split and is
// logged as a warning.
func SplitDelimiter(spans []Span, delimiter string, kind SpanKind) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanText || delimiter == "" || !strings.Contains(span.Text, delimiter) {
			out = append(out, span)
			continue
		}

		parts := strings.Split(span.Text, delimiter)
		if len(parts)%2 == 0 {
			log.Printf("WARN: unbalanced %q delimiter in %q", delimiter, span.Text)
		}
		for i, part := range parts {
			if i%2 == 1 {
				out = append(out, Span{Kind: kind, Text: part})
				continue
			}
			if part != "" {
				out = append(out, TextSpan(part))
			}
		}
	}
	return out
}

// SplitImages extracts ![alt](url) patterns from text spans.
func SplitImages(spans []Span) []Span {
	return splitMatches(spans, findImages, SpanImage)
}

// SplitLinks extracts [text](url) patterns that are not preceded by '!'.
func SplitLinks(spans []Span) []Span {
	return splitMatches(spans, findLinks, SpanLink)
}

func findImages(text string) [][]int {
	return imagePattern.FindAllStringSubmatchIndex(text, -1)
}

func findLinks(text string) [][]int {
	var locs [][]int
	for _, loc := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		// RE2 has no look-behind, so image syntax is filtered here.
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			continue
		}
		locs = append(locs, loc)
	}
	return locs
}

// splitMatches replaces each match in a text span with a span of kind,
// built from the match's two groups. Surrounding text is kept only when
// non-empty; a span without matches passes through unchanged.
func splitMatches(spans []Span, find func(string) [][]int, kind SpanKind) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanText {
			out = append(out, span)
			continue
		}
		locs := find(span.Text)
		if len(locs) == 0 {
			out = append(out, span)
			continue
		}

		text := span.Text
		pos := 0
		for _, loc := range locs {
			if before := text[pos:loc[0]]; before != "" {
				out = append(out, TextSpan(before))
			}
			out = append(out, Span{
				Kind:   kind,
				Text:   text[loc[2]:loc[3]],
				Target: text[loc[4]:loc[5]],
			})
			pos = loc[1]
		}
		if rest := text[pos:]; rest != "" {
			out = append(out, TextSpan(rest))
		}
	}
	return out
}

// ExtractImages returns every ![alt](url) in text as image spans.
func ExtractImages(text string) []Span {
	return extract(text, findImages, SpanImage)
}

// ExtractLinks returns every [text](url) in text, images excluded, as link spans.
func ExtractLinks(text string) []Span {
	return extract(text, findLinks, SpanLink)
}

func extract(text string, find func(string) [][]int, kind SpanKind) []Span {
	var out []Span
	for _, loc := range find(text) {
		out = append(out, Span{Kind: kind, Text: text[loc[2]:loc[3]], Target: text[loc[4]:loc[5]]})
	}
	return out
}
