// Package md converts Markdown documents into HTML markup trees and pages.
package md

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Engine selects the Markdown renderer used for page content.
type Engine string

const (
	// EngineNative renders through DocumentToTree.
	EngineNative Engine = "native"
	// EngineGoldmark renders CommonMark with GFM tables through goldmark.
	EngineGoldmark Engine = "goldmark"
)

// ValidEngines returns the accepted engine names.
func ValidEngines() []string {
	return []string{string(EngineNative), string(EngineGoldmark)}
}

// ParseEngine maps a configuration value to an Engine. Empty means native.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("invalid engine %q: must be one of %v", s, ValidEngines())
	}
}

// mdParser is a pre-configured goldmark instance with GFM table extension.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// ToHTML converts markdown to an HTML fragment with goldmark.
func ToHTML(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := mdParser.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render converts a document to an HTML fragment with the given engine.
func Render(document string, engine Engine) (string, error) {
	switch engine {
	case "", EngineNative:
		return DocumentToMarkup(document)
	case EngineGoldmark:
		return ToHTML([]byte(document))
	default:
		return "", fmt.Errorf("invalid engine %q: must be one of %v", engine, ValidEngines())
	}
}
