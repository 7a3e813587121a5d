// span.go defines the typed inline spans produced by the tokenizer.
package md

import "fmt"

// SpanKind identifies how a span of inline text is rendered.
type SpanKind int

const (
	SpanText   SpanKind = iota // plain text, rendered without a wrapping element
	SpanBold                   // **text**
	SpanItalic                 // *text*
	SpanCode                   // `text`
	SpanLink                   // [text](url)
	SpanImage                  // ![alt](url)
)

var spanKindNames = map[SpanKind]string{
	SpanText:   "text",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

func (k SpanKind) String() string {
	if name, ok := spanKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SpanKind(%d)", int(k))
}

// Span is a typed fragment of inline text. For images Text holds the alt
// text. Target is only set for links and images.
type Span struct {
	Kind   SpanKind
	Text   string
	Target string
}

// TextSpan returns a plain text span.
func TextSpan(text string) Span { return Span{Kind: SpanText, Text: text} }

// BoldSpan returns a bold span.
func BoldSpan(text string) Span { return Span{Kind: SpanBold, Text: text} }

// ItalicSpan returns an italic span.
func ItalicSpan(text string) Span { return Span{Kind: SpanItalic, Text: text} }

// CodeSpan returns an inline code span.
func CodeSpan(text string) Span { return Span{Kind: SpanCode, Text: text} }

// LinkSpan returns a link span pointing at url.
func LinkSpan(text, url string) Span { return Span{Kind: SpanLink, Text: text, Target: url} }

// ImageSpan returns an image span with the given alt text and source url.
func ImageSpan(alt, url string) Span { return Span{Kind: SpanImage, Text: alt, Target: url} }

// HasTarget reports whether the span kind carries a URL.
func (s Span) HasTarget() bool {
	return s.Kind == SpanLink || s.Kind == SpanImage
}

func (s Span) String() string {
	if s.HasTarget() {
		return fmt.Sprintf("Span(%s, %q, %q)", s.Kind, s.Text, s.Target)
	}
	return fmt.Sprintf("Span(%s, %q)", s.Kind, s.Text)
}
