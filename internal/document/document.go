// Package document decodes TOML widget-tree documents and builds them into a
// dom tree.
package document

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jask/boxtree/internal/dom"
	"github.com/jask/boxtree/internal/style"
)

// TextLeafKind marks a raw text leaf rather than an element.
const TextLeafKind = "#text"

// Document is the top-level TOML structure.
type Document struct {
	Root Node `toml:"root"`
}

// Node describes one element or text leaf.
type Node struct {
	Kind     string         `toml:"kind"`
	Name     string         `toml:"name"`
	Text     any            `toml:"text"`
	Style    map[string]any `toml:"style"`
	Children []Node         `toml:"children"`
}

// Named pairs an element with the name it was given in the document.
type Named struct {
	Name    string
	Element *dom.Element
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes into a Document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	if doc.Root.Kind == "" {
		doc.Root.Kind = dom.KindRoot.String()
	}
	if doc.Root.Kind != dom.KindRoot.String() {
		return Document{}, fmt.Errorf("root: kind must be %q, got %q", dom.KindRoot.String(), doc.Root.Kind)
	}
	if err := validate("root", doc.Root, true); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func validate(path string, n Node, top bool) error {
	switch n.Kind {
	case TextLeafKind:
		if len(n.Children) > 0 {
			return fmt.Errorf("%s: text leaves cannot have children", path)
		}
		return nil
	case "":
	default:
		kind, ok := dom.ParseKind(n.Kind)
		if !ok {
			return fmt.Errorf("%s: unknown kind %q", path, n.Kind)
		}
		if kind == dom.KindRoot && !top {
			return fmt.Errorf("%s: root may only appear at the top", path)
		}
	}
	for i, c := range n.Children {
		if err := validate(fmt.Sprintf("%s.children[%d]", path, i), c, false); err != nil {
			return err
		}
	}
	return nil
}

// Build creates, styles and links the document's tree. It returns the root
// element and the named elements in document order.
func Build(m *dom.Manager, doc Document) (*dom.Element, []Named, error) {
	if doc.Root.Kind == "" {
		doc.Root.Kind = dom.KindRoot.String()
	}
	b := builder{m: m}
	root, err := b.element("root", doc.Root)
	if err != nil {
		return nil, nil, err
	}
	return root, b.named, nil
}

type builder struct {
	m     *dom.Manager
	named []Named
}

func (b *builder) element(path string, n Node) (*dom.Element, error) {
	kind := dom.KindBox
	if n.Kind != "" {
		k, ok := dom.ParseKind(n.Kind)
		if !ok {
			return nil, fmt.Errorf("%s: unknown kind %q", path, n.Kind)
		}
		kind = k
	}

	el := b.m.CreateElement(kind)
	b.m.ApplyStyle(el, style.Style(n.Style))
	if n.Name != "" {
		b.named = append(b.named, Named{Name: n.Name, Element: el})
	}

	if n.Text != nil {
		b.m.AppendChild(el, b.m.CreateTextLeaf(n.Text))
	}

	for i, c := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if c.Kind == TextLeafKind {
			leaf := b.m.CreateTextLeaf(c.Text)
			b.m.ApplyStyle(leaf, style.Style(c.Style))
			b.m.AppendChild(el, leaf)
			continue
		}
		child, err := b.element(childPath, c)
		if err != nil {
			return nil, err
		}
		b.m.AppendChild(el, child)
	}
	return el, nil
}
