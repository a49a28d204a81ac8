package dom

import (
	"github.com/jask/boxtree/internal/style"
)

// Kind is the tag of an Element.
type Kind uint8

const (
	KindRoot Kind = iota
	KindBox
	KindText
	// KindVirtualText never owns a layout handle; its text is measured as
	// part of the nearest text container above it.
	KindVirtualText
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindBox:
		return "box"
	case KindText:
		return "text"
	case KindVirtualText:
		return "virtual-text"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "root":
		return KindRoot, true
	case "box":
		return KindBox, true
	case "text":
		return KindText, true
	case "virtual-text":
		return KindVirtualText, true
	default:
		return 0, false
	}
}

func (k Kind) textBearing() bool {
	return k == KindText || k == KindVirtualText
}

// Node is either an *Element or a *Text.
type Node interface {
	Parent() *Element
	Style() style.Style

	setParent(*Element)
	setStyle(style.Style)
	layoutHandle() *Handle
}

// AccessibilityKey is the attribute key that replaces an element's
// accessibility descriptor instead of being stored as an attribute.
const AccessibilityKey = "internal_accessibility"

// Accessibility describes an element for assistive technology.
type Accessibility struct {
	Role  string
	State AccessibilityState
}

type AccessibilityState struct {
	Busy            bool
	Checked         bool
	Disabled        bool
	Expanded        bool
	Multiline       bool
	Multiselectable bool
	Readonly        bool
	Required        bool
	Selected        bool
}

// Element is a node with a kind, attributes, children and, unless it is
// virtual text, a layout handle.
type Element struct {
	kind          Kind
	attributes    map[string]any
	children      []Node
	parent        *Element
	style         style.Style
	handle        *Handle
	accessibility Accessibility
}

func (e *Element) Kind() Kind { return e.kind }
func (e *Element) Parent() *Element { return e.parent }
func (e *Element) Style() style.Style { return e.style }
func (e *Element) Handle() *Handle { return e.handle }
func (e *Element) Accessibility() Accessibility { return e.accessibility }

// Attribute returns the value stored under key.
func (e *Element) Attribute(key string) (any, bool) {
	v, ok := e.attributes[key]
	return v, ok
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

func (e *Element) setParent(p *Element) { e.parent = p }
func (e *Element) setStyle(s style.Style) { e.style = s }
func (e *Element) layoutHandle() *Handle { return e.handle }

// handleIndex counts the children before i that own a layout handle, which
// is where a handle inserted at child index i belongs in the solver tree.
func (e *Element) handleIndex(i int) int {
	n := 0
	for _, c := range e.children[:i] {
		if c.layoutHandle() != nil {
			n++
		}
	}
	return n
}

// Text is a leaf holding a string. It never owns a layout handle.
type Text struct {
	parent *Element
	value  string
	style  style.Style
}

func (t *Text) Parent() *Element { return t.parent }
func (t *Text) Style() style.Style { return t.style }
func (t *Text) Value() string { return t.value }

func (t *Text) setParent(p *Element) { t.parent = p }
func (t *Text) setStyle(s style.Style) { t.style = s }
func (t *Text) layoutHandle() *Handle { return nil }
