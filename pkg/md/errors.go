// errors.go defines the failure kinds shared by the parsing pipeline.
package md

import "errors"

var (
	// ErrInvalidNode reports a Leaf or Branch that violates its construction
	// invariant: a leaf without a value, or a branch without a tag or children.
	ErrInvalidNode = errors.New("invalid markup node")

	// ErrMissingContent reports a block that produced no inline spans, a list
	// that produced no items, or a document with no blocks at all.
	ErrMissingContent = errors.New("missing content")

	// ErrUnrecognizedSpanKind reports a span whose kind has no markup mapping.
	ErrUnrecognizedSpanKind = errors.New("unrecognized span kind")

	// ErrNoTitle reports a document without a level-1 heading.
	ErrNoTitle = errors.New("no level-1 heading found")
)
