// block.go splits documents into blocks and classifies each block.
package md

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockType identifies the block-level structure of a Markdown block.
type BlockType int

const (
	BlockParagraph     BlockType = iota // anything not matched below
	BlockHeading                        // 1-6 '#' then a space
	BlockCode                           // starts and ends with a ``` fence
	BlockQuote                          // every line starts with '>'
	BlockUnorderedList                  // every line starts with "* " or "- "
	BlockOrderedList                    // line i starts with "i. "
)

var blockTypeNames = map[BlockType]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
}

func (t BlockType) String() string {
	if name, ok := blockTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BlockType(%d)", int(t))
}

// IsList reports whether blocks of this type break down into items.
func (t BlockType) IsList() bool {
	return t == BlockUnorderedList || t == BlockOrderedList
}

const codeFence = "```"

var (
	headingPattern       = regexp.MustCompile(`^#{1,6} `)
	headingMarker        = regexp.MustCompile(`^#{1,6}\s*`)
	unorderedItemPattern = regexp.MustCompile(`^[*-] `)
	unorderedItemMarker  = regexp.MustCompile(`^[ \t]*[-*][ \t]+`)
	orderedItemMarker    = regexp.MustCompile(`^[ \t]*\d+\.[ \t]+`)
	quoteMarker          = regexp.MustCompile(`(?m)^[ \t]*> ?`)
)

// Block is a blank-line delimited region of a document.
type Block struct {
	Type     BlockType
	Level    int    // heading level 1-6; 0 for other types
	Language string // fence info string for code blocks
	Raw      string // trimmed source text, markers included
}

// Content returns the block text with its structural markers removed: one
// element per item for lists, exactly one element otherwise.
func (b Block) Content() []string {
	return StripMarkers(b.Raw, b.Type)
}

// SplitBlocks splits a document on blank lines. Each block is trimmed and
// blocks that are empty after trimming are dropped.
func SplitBlocks(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	var blocks []string
	for _, candidate := range strings.Split(document, "\n\n") {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// ParseBlocks splits and classifies a document.
func ParseBlocks(document string) []Block {
	raw := SplitBlocks(document)
	blocks := make([]Block, 0, len(raw))
	for _, text := range raw {
		b := Block{Type: Classify(text), Raw: text}
		switch b.Type {
		case BlockHeading:
			b.Level = HeadingLevel(text)
		case BlockCode:
			b.Language = CodeLanguage(text)
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Classify returns the type of a single block. The first matching rule wins:
// heading, code, quote, unordered list, ordered list, paragraph.
func Classify(block string) BlockType {
	block = strings.TrimSpace(block)
	lines := strings.Split(block, "\n")
	switch {
	case headingPattern.MatchString(block):
		return BlockHeading
	case isCodeBlock(block):
		return BlockCode
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, ">") }):
		return BlockQuote
	case allLines(lines, func(_ int, line string) bool { return unorderedItemPattern.MatchString(line) }):
		return BlockUnorderedList
	case allLines(lines, func(i int, line string) bool { return strings.HasPrefix(line, strconv.Itoa(i+1)+". ") }):
		return BlockOrderedList
	default:
		return BlockParagraph
	}
}

func isCodeBlock(block string) bool {
	return strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence)
}

func allLines(lines []string, match func(i int, line string) bool) bool {
	for i, line := range lines {
		if !match(i, line) {
			return false
		}
	}
	return true
}

// HeadingLevel returns the number of leading '#' of a heading block, or 0 if
// the block is not a heading.
func HeadingLevel(block string) int {
	block = strings.TrimSpace(block)
	if !headingPattern.MatchString(block) {
		return 0
	}
	return len(block) - len(strings.TrimLeft(block, "#"))
}

// CodeLanguage returns the info string following the opening fence of a
// multi-line code block, e.g. "go" for "```go".
func CodeLanguage(block string) string {
	_, lang := splitCodeFence(strings.TrimSpace(block))
	return lang
}

// StripMarkers removes the structural prefix of each block type. Lists yield
// one string per item; all other types yield a single string.
func StripMarkers(block string, t BlockType) []string {
	switch t {
	case BlockHeading:
		return []string{headingMarker.ReplaceAllString(block, "")}
	case BlockCode:
		body, _ := splitCodeFence(block)
		return []string{body}
	case BlockQuote:
		return []string{quoteMarker.ReplaceAllString(block, "")}
	case BlockUnorderedList:
		return stripItems(block, unorderedItemMarker)
	case BlockOrderedList:
		return stripItems(block, orderedItemMarker)
	default:
		return []string{block}
	}
}

func stripItems(block string, marker *regexp.Regexp) []string {
	lines := strings.Split(block, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		items = append(items, marker.ReplaceAllString(line, ""))
	}
	return items
}

// splitCodeFence removes the opening and closing fences. On a multi-line
// block the remainder of the opening line is the info string.
func splitCodeFence(block string) (body, lang string) {
	inner := strings.TrimPrefix(block, codeFence)
	inner = strings.TrimSuffix(inner, codeFence)

	nl := strings.IndexByte(inner, '\n')
	if nl < 0 {
		return inner, ""
	}
	lang = strings.TrimSpace(inner[:nl])
	body = strings.TrimSuffix(inner[nl+1:], "\n")
	return body, lang
}
