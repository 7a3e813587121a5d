// assemble.go builds markup trees from classified blocks.
package md

import (
	"fmt"
	"strconv"
	"strings"
)

// documentTag is the element wrapping every block of a document.
const documentTag = "div"

// spanTags maps tagged span kinds to their element name.
var spanTags = map[SpanKind]string{
	SpanBold:   "b",
	SpanItalic: "i",
	SpanCode:   "code",
	SpanLink:   "a",
	SpanImage:  "img",
}

// SpanToLeaf converts a span into a leaf node. Links carry href; images
// carry src then alt and have an empty value.
func SpanToLeaf(s Span) (*Leaf, error) {
	switch s.Kind {
	case SpanText:
		return NewLeaf("", s.Text), nil
	case SpanBold, SpanItalic, SpanCode:
		return NewLeaf(spanTags[s.Kind], s.Text), nil
	case SpanLink:
		return NewLeaf(spanTags[s.Kind], s.Text, Attribute{Name: "href", Value: s.Target}), nil
	case SpanImage:
		return NewLeaf(spanTags[s.Kind], "",
			Attribute{Name: "src", Value: s.Target},
			Attribute{Name: "alt", Value: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("span kind %s: %w", s.Kind, ErrUnrecognizedSpanKind)
	}
}

// TextToLeaves tokenizes text and converts every span to a leaf. Newlines
// are collapsed to single spaces first.
func TextToLeaves(text string) ([]Node, error) {
	spans := TextToSpans(strings.ReplaceAll(text, "\n", " "))
	if len(spans) == 0 {
		return nil, fmt.Errorf("no inline spans in %q: %w", text, ErrMissingContent)
	}
	leaves := make([]Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := SpanToLeaf(span)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}

// BlockTag returns the element name used for a block.
func BlockTag(b Block) (string, error) {
	switch b.Type {
	case BlockParagraph:
		return "p", nil
	case BlockHeading:
		if b.Level < 1 || b.Level > 6 {
			return "", fmt.Errorf("heading level %d out of range: %w", b.Level, ErrInvalidNode)
		}
		return "h" + strconv.Itoa(b.Level), nil
	case BlockCode:
		return "code", nil
	case BlockQuote:
		return "blockquote", nil
	case BlockUnorderedList:
		return "ul", nil
	case BlockOrderedList:
		return "ol", nil
	default:
		return "", fmt.Errorf("block type %s: %w", b.Type, ErrInvalidNode)
	}
}

// BlockToBranch converts one block into its branch: inline leaves wrapped in
// the block element, or li branches wrapped in ul/ol for lists.
func BlockToBranch(b Block) (*Branch, error) {
	tag, err := BlockTag(b)
	if err != nil {
		return nil, err
	}

	content := b.Content()
	if len(content) == 0 {
		return nil, fmt.Errorf("%s block has no content: %w", b.Type, ErrMissingContent)
	}

	var children []Node
	if b.Type.IsList() {
		for i, item := range content {
			leaves, err := TextToLeaves(item)
			if err != nil {
				return nil, fmt.Errorf("failed to convert item %d: %w", i+1, err)
			}
			li, err := NewBranch("li", leaves)
			if err != nil {
				return nil, err
			}
			children = append(children, li)
		}
	} else {
		children, err = TextToLeaves(strings.Join(content, "\n"))
		if err != nil {
			return nil, err
		}
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%s block has no children: %w", b.Type, ErrMissingContent)
	}

	var attrs []Attribute
	if b.Type == BlockCode && b.Language != "" {
		attrs = append(attrs, Attribute{Name: "class", Value: "language-" + b.Language})
	}
	return NewBranch(tag, children, attrs...)
}

// DocumentToTree parses a document into a div branch holding one child per
// block, in source order. Any failing block aborts the whole document.
func DocumentToTree(document string) (*Branch, error) {
	blocks := ParseBlocks(document)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("document has no blocks: %w", ErrMissingContent)
	}

	children := make([]Node, 0, len(blocks))
	for i, b := range blocks {
		branch, err := BlockToBranch(b)
		if err != nil {
			return nil, fmt.Errorf("failed to convert block %d (%s): %w", i+1, b.Type, err)
		}
		children = append(children, branch)
	}
	return NewBranch(documentTag, children)
}

// DocumentToMarkup parses a document and serializes the resulting tree.
func DocumentToMarkup(document string) (string, error) {
	tree, err := DocumentToTree(document)
	if err != nil {
		return "", err
	}
	return tree.ToMarkup()
}
