// page.go renders complete pages by filling a template with a document.
package md

import (
	"errors"
	"fmt"
	"strings"
)

// Default template placeholders.
const (
	DefaultTitlePlaceholder   = "{{ Title }}"
	DefaultContentPlaceholder = "{{ Content }}"
)

// PageOptions configures RenderPage. Template is required; the other fields
// fall back to their defaults when empty.
type PageOptions struct {
	Template           string
	TitlePlaceholder   string
	ContentPlaceholder string
	Engine             Engine
}

// WithDefaults returns a copy with empty optional fields filled in.
func (o PageOptions) WithDefaults() PageOptions {
	if o.TitlePlaceholder == "" {
		o.TitlePlaceholder = DefaultTitlePlaceholder
	}
	if o.ContentPlaceholder == "" {
		o.ContentPlaceholder = DefaultContentPlaceholder
	}
	if o.Engine == "" {
		o.Engine = EngineNative
	}
	return o
}

// Validate checks that the options can render a page.
func (o PageOptions) Validate() error {
	o = o.WithDefaults()
	if strings.TrimSpace(o.Template) == "" {
		return errors.New("template is required")
	}
	if _, err := ParseEngine(string(o.Engine)); err != nil {
		return err
	}
	if o.TitlePlaceholder == o.ContentPlaceholder {
		return errors.New("title and content placeholders must differ")
	}
	if !strings.Contains(o.Template, o.ContentPlaceholder) {
		return fmt.Errorf("template has no %s placeholder", o.ContentPlaceholder)
	}
	return nil
}

// ExtractTitle returns the text of the first level-1 heading. Newlines are
// collapsed to spaces, as they are in the rendered heading.
func ExtractTitle(document string) (string, error) {
	for _, b := range ParseBlocks(document) {
		if b.Type == BlockHeading && b.Level == 1 {
			return strings.TrimSpace(strings.ReplaceAll(b.Content()[0], "\n", " ")), nil
		}
	}
	return "", ErrNoTitle
}

// RenderPage renders document with the configured engine and substitutes the
// result, and the document title, into the template. A missing title is only
// an error when the template asks for one.
func RenderPage(document string, opts PageOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid page options: %w", err)
	}
	opts = opts.WithDefaults()

	var title string
	if strings.Contains(opts.Template, opts.TitlePlaceholder) {
		t, err := ExtractTitle(document)
		if err != nil {
			return "", err
		}
		title = t
	}

	content, err := Render(document, opts.Engine)
	if err != nil {
		return "", fmt.Errorf("failed to render content: %w", err)
	}

	// One pass, so placeholders inside the title or content are left alone.
	r := strings.NewReplacer(opts.TitlePlaceholder, title, opts.ContentPlaceholder, content)
	return r.Replace(opts.Template), nil
}
