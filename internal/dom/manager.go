package dom

import (
	"fmt"
	"log"
	"slices"

	"github.com/spf13/cast"

	"github.com/jask/boxtree/internal/solver"
	"github.com/jask/boxtree/internal/style"
	"github.com/jask/boxtree/internal/text"
)

// Manager keeps an element tree and its mirror in a LayoutTree in step.
type Manager struct {
	tree   LayoutTree
	text   *text.Measurer
	logger *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger enables debug logging of tree mutations.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager returns a Manager mirroring elements into tree. A nil measurer
// is replaced by an uncached one wrapping with "wrap".
func NewManager(tree LayoutTree, measurer *text.Measurer, opts ...Option) *Manager {
	m := &Manager{tree: tree, text: measurer}
	if m.text == nil {
		m.text = text.NewMeasurer(0, "")
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Tree returns the layout store the manager mirrors into.
func (m *Manager) Tree() LayoutTree { return m.tree }

func (m *Manager) debugf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}

// CreateElement returns a detached element of kind. Every kind except
// virtual text gets a layout handle; text containers are sized by
// measuring their squashed text.
func (m *Manager) CreateElement(kind Kind) *Element {
	el := &Element{kind: kind, attributes: map[string]any{}}
	if kind != KindVirtualText {
		el.handle = NewHandle(m.tree, kind)
	}
	if kind == KindText {
		el.handle.AttachMeasurement(func(width solver.AvailableSpace) solver.Size[float64] {
			return m.Measure(el, width)
		})
	}
	return el
}

// CreateTextLeaf returns a detached text leaf holding value.
func (m *Manager) CreateTextLeaf(value any) *Text {
	t := &Text{}
	m.SetTextValue(t, value)
	return t
}

// AppendChild moves child to the end of parent's children.
func (m *Manager) AppendChild(parent *Element, child Node) {
	if old := child.Parent(); old != nil {
		m.RemoveChild(old, child)
	}

	child.setParent(parent)
	parent.children = append(parent.children, child)

	if ch := child.layoutHandle(); ch != nil && parent.handle != nil {
		m.tree.AddChild(parent.handle.id, ch.id)
	}
	if parent.kind.textBearing() {
		m.markDirty(parent)
	}
	m.debugf("append %s under %s", nodeName(child), parent.kind)
}

// InsertBefore places child immediately before ref in parent's children.
// A nil or foreign ref appends.
func (m *Manager) InsertBefore(parent *Element, child, ref Node) {
	if old := child.Parent(); old != nil {
		m.RemoveChild(old, child)
	}

	child.setParent(parent)
	ch := child.layoutHandle()

	idx := -1
	if ref != nil {
		idx = slices.Index(parent.children, ref)
	}
	if idx >= 0 {
		parent.children = append(parent.children, nil)
		copy(parent.children[idx+1:], parent.children[idx:])
		parent.children[idx] = child
		if ch != nil && parent.handle != nil {
			m.tree.InsertChildAtIndex(parent.handle.id, parent.handleIndex(idx), ch.id)
		}
	} else {
		parent.children = append(parent.children, child)
		if ch != nil && parent.handle != nil {
			m.tree.AddChild(parent.handle.id, ch.id)
		}
	}

	if parent.kind.textBearing() {
		m.markDirty(parent)
	}
	m.debugf("insert %s under %s at %d", nodeName(child), parent.kind, idx)
}

// RemoveChild detaches child from parent.
func (m *Manager) RemoveChild(parent *Element, child Node) {
	if ch := child.layoutHandle(); ch != nil {
		if p := child.Parent(); p != nil && p.handle != nil {
			m.tree.RemoveChild(p.handle.id, ch.id)
		}
	}

	child.setParent(nil)
	if idx := slices.Index(parent.children, child); idx >= 0 {
		parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	}

	if parent.kind.textBearing() {
		m.markDirty(parent)
	}
	m.debugf("remove %s from %s", nodeName(child), parent.kind)
}

// SetAttribute stores value under key. The accessibility key replaces the
// element's descriptor instead; a value that is not a descriptor clears it.
func (m *Manager) SetAttribute(el *Element, key string, value any) {
	if key != AccessibilityKey {
		el.attributes[key] = value
		return
	}
	switch v := value.(type) {
	case Accessibility:
		el.accessibility = v
	case *Accessibility:
		if v != nil {
			el.accessibility = *v
			return
		}
		el.accessibility = Accessibility{}
	default:
		el.accessibility = Accessibility{}
	}
}

// SetStyle replaces the node's style map without touching the solver.
func (m *Manager) SetStyle(n Node, s style.Style) {
	n.setStyle(s)
}

// ApplyStyle sets the style map and merges it into the node's layout
// handle, if it has one.
func (m *Manager) ApplyStyle(n Node, s style.Style) {
	m.SetStyle(n, s)
	if h := n.layoutHandle(); h != nil {
		h.ApplyStyle(s)
	}
}

// SetTextValue replaces a leaf's text. Non-string values are converted to
// their string form.
func (m *Manager) SetTextValue(t *Text, value any) {
	s, err := cast.ToStringE(value)
	if err != nil {
		s = fmt.Sprint(value)
	}
	t.value = s
	m.markDirty(t)
}

// Destroy detaches n and releases every layout handle in its subtree.
func (m *Manager) Destroy(n Node) {
	if p := n.Parent(); p != nil {
		m.RemoveChild(p, n)
	}

	released := 0
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		el, ok := cur.(*Element)
		if !ok {
			continue
		}
		if el.handle != nil {
			el.handle.Release()
			el.handle = nil
			released++
		}
		stack = append(stack, el.children...)
	}
	m.debugf("destroy %s: released %d handles", nodeName(n), released)
}

// ComputeLayout solves the tree rooted at root within the given space.
func (m *Manager) ComputeLayout(root *Element, width, height solver.AvailableSpace) {
	if root.handle == nil {
		return
	}
	m.tree.Compute(root.handle.id, width, height)
}

// MeasureElement returns the computed size of el, or zero when el has no
// layout handle.
func (m *Manager) MeasureElement(el *Element) solver.Size[float64] {
	if el.handle == nil {
		return solver.Size[float64]{}
	}
	l := el.handle.Layout()
	return solver.Size[float64]{Width: l.Width, Height: l.Height}
}

// Measure sizes n's text for width: a leaf's own text, or an element's
// squashed text, wrapped with the element's textWrap policy.
func (m *Manager) Measure(n Node, width solver.AvailableSpace) solver.Size[float64] {
	switch v := n.(type) {
	case *Text:
		return m.text.Measure(v.value, v.style.TextWrap(), width)
	case *Element:
		return m.text.Measure(Squash(v), v.style.TextWrap(), width)
	}
	return solver.Size[float64]{}
}

// markDirty invalidates the cached measurement of the nearest text
// container that owns n. Detached subtrees have nothing to invalidate.
func (m *Manager) markDirty(n Node) {
	if h := closestHandleOwner(n); h != nil {
		m.tree.MarkDirty(h.id)
	}
}

// closestHandleOwner walks from n towards the root and returns the first
// layout handle found, stopping at the first node without a parent.
func closestHandleOwner(n Node) *Handle {
	for n != nil {
		parent := n.Parent()
		if parent == nil {
			return nil
		}
		if h := n.layoutHandle(); h != nil {
			return h
		}
		n = parent
	}
	return nil
}

func nodeName(n Node) string {
	if el, ok := n.(*Element); ok {
		return el.kind.String()
	}
	return "#text"
}
