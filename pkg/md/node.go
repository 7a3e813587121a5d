// node.go defines the markup tree produced by the assembler.
package md

import (
	"fmt"
	"strings"
)

// Attribute is a single name="value" pair on a markup node.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list. Serialization follows insertion order.
type Attributes []Attribute

// Serialize renders the attributes as ` name="value"` pairs, leading space
// included. Values are written verbatim.
func (a Attributes) Serialize() string {
	if len(a) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, attr := range a {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteString(`"`)
	}
	return sb.String()
}

// Get returns the value of the first attribute with the given name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Node is a markup tree node. The only implementations are *Leaf and *Branch.
type Node interface {
	// Tag returns the element name; empty for raw-text leaves.
	Tag() string
	// Attrs returns the node's attributes in insertion order.
	Attrs() Attributes
	// SerializeAttributes renders Attrs for inclusion in an opening tag.
	SerializeAttributes() string
	// ToMarkup serializes the node and its subtree.
	ToMarkup() (string, error)
	// Equal reports structural equality. Attributes are not compared.
	Equal(other Node) bool

	writeMarkup(sb *strings.Builder) error
}

// Leaf is a node holding text and no children. A Leaf with an empty tag
// renders its value without a wrapping element.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	attrs    Attributes
}

// NewLeaf creates a leaf. Pass an empty tag for raw text.
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    copyAttrs(attrs),
	}
}

// Tag returns the element name, empty for raw text.
func (l *Leaf) Tag() string { return l.tag }

// Attrs returns a copy of the leaf's attributes.
func (l *Leaf) Attrs() Attributes { return copyAttrs(l.attrs) }

// SerializeAttributes renders the attributes for the opening tag.
func (l *Leaf) SerializeAttributes() string { return l.attrs.Serialize() }

// Value returns the leaf text and whether it was set.
func (l *Leaf) Value() (string, bool) { return l.value, l.hasValue }

// ToMarkup renders `<tag attrs>value</tag>`, or the bare value when untagged.
func (l *Leaf) ToMarkup() (string, error) {
	var sb strings.Builder
	if err := l.writeMarkup(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (l *Leaf) writeMarkup(sb *strings.Builder) error {
	if !l.hasValue {
		return fmt.Errorf("leaf %q has no value: %w", l.tag, ErrInvalidNode)
	}
	if l.tag == "" {
		sb.WriteString(l.value)
		return nil
	}
	sb.WriteString("<")
	sb.WriteString(l.tag)
	sb.WriteString(l.attrs.Serialize())
	sb.WriteString(">")
	sb.WriteString(l.value)
	sb.WriteString("</")
	sb.WriteString(l.tag)
	sb.WriteString(">")
	return nil
}

// Equal reports whether other is a Leaf with the same tag and value.
func (l *Leaf) Equal(other Node) bool {
	o, ok := other.(*Leaf)
	if !ok || l == nil || o == nil {
		return ok && l == o
	}
	return l.tag == o.tag && l.value == o.value && l.hasValue == o.hasValue
}

func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q)", l.tag, l.value)
}

// Branch is a node with an element name and an ordered, exclusively owned
// list of children.
type Branch struct {
	tag      string
	children []Node
	attrs    Attributes
}

// NewBranch creates a branch. It fails with ErrInvalidNode when tag is empty
// or children is empty.
func NewBranch(tag string, children []Node, attrs ...Attribute) (*Branch, error) {
	if tag == "" {
		return nil, fmt.Errorf("branch without tag: %w", ErrInvalidNode)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("branch %q without children: %w", tag, ErrInvalidNode)
	}
	kids := make([]Node, len(children))
	copy(kids, children)
	return &Branch{
		tag:      tag,
		children: kids,
		attrs:    copyAttrs(attrs),
	}, nil
}

// Tag returns the element name.
func (b *Branch) Tag() string { return b.tag }

// Attrs returns a copy of the branch's attributes.
func (b *Branch) Attrs() Attributes { return copyAttrs(b.attrs) }

// SerializeAttributes renders the attributes for the opening tag.
func (b *Branch) SerializeAttributes() string { return b.attrs.Serialize() }

// Children returns a copy of the child list.
func (b *Branch) Children() []Node {
	kids := make([]Node, len(b.children))
	copy(kids, b.children)
	return kids
}

// ToMarkup renders `<tag attrs>` followed by every child and `</tag>`.
func (b *Branch) ToMarkup() (string, error) {
	var sb strings.Builder
	if err := b.writeMarkup(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (b *Branch) writeMarkup(sb *strings.Builder) error {
	if b.tag == "" {
		return fmt.Errorf("branch without tag: %w", ErrInvalidNode)
	}
	if len(b.children) == 0 {
		return fmt.Errorf("branch %q without children: %w", b.tag, ErrInvalidNode)
	}
	sb.WriteString("<")
	sb.WriteString(b.tag)
	sb.WriteString(b.attrs.Serialize())
	sb.WriteString(">")
	for i, child := range b.children {
		if child == nil {
			return fmt.Errorf("branch %q child %d is nil: %w", b.tag, i, ErrInvalidNode)
		}
		if err := child.writeMarkup(sb); err != nil {
			return fmt.Errorf("failed to render <%s> child %d: %w", b.tag, i, err)
		}
	}
	sb.WriteString("</")
	sb.WriteString(b.tag)
	sb.WriteString(">")
	return nil
}

// Equal reports whether other is a Branch with the same tag and pairwise
// equal children.
func (b *Branch) Equal(other Node) bool {
	o, ok := other.(*Branch)
	if !ok || b == nil || o == nil {
		return ok && b == o
	}
	if b.tag != o.tag || len(b.children) != len(o.children) {
		return false
	}
	for i := range b.children {
		if b.children[i] == nil || !b.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (b *Branch) String() string {
	return fmt.Sprintf("Branch(%q, %d children)", b.tag, len(b.children))
}

func copyAttrs(attrs []Attribute) Attributes {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attributes, len(attrs))
	copy(out, attrs)
	return out
}
