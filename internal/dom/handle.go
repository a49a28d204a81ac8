package dom

import (
	"github.com/jask/boxtree/internal/solver"
	"github.com/jask/boxtree/internal/style"
)

// LayoutTree is the solver surface the element tree drives.
type LayoutTree interface {
	NewNode(style solver.Style) solver.NodeID
	AddChild(parent, child solver.NodeID)
	InsertChildAtIndex(parent solver.NodeID, index int, child solver.NodeID)
	RemoveChild(parent, child solver.NodeID)
	Remove(id solver.NodeID)
	Children(id solver.NodeID) []solver.NodeID
	MarkDirty(id solver.NodeID)
	Style(id solver.NodeID) solver.Style
	SetStyle(id solver.NodeID, style solver.Style)
	SetMeasureFunc(id solver.NodeID, fn solver.MeasureFunc)
	Layout(id solver.NodeID) solver.Layout
	Compute(root solver.NodeID, width, height solver.AvailableSpace)
}

// Handle owns one node in a LayoutTree.
type Handle struct {
	tree LayoutTree
	id   solver.NodeID
}

// NewHandle creates a solver node with the base style for kind: flex
// display, stretch alignment, and column direction for the root.
func NewHandle(tree LayoutTree, kind Kind) *Handle {
	ns := solver.DefaultStyle()
	ns.Display = solver.DisplayFlex
	ns.FlexDirection = solver.FlexDirectionRow
	if kind == KindRoot {
		ns.FlexDirection = solver.FlexDirectionColumn
	}
	ns.AlignItems = solver.AlignItemsStretch
	return &Handle{tree: tree, id: tree.NewNode(ns)}
}

// ID is the node this handle owns.
func (h *Handle) ID() solver.NodeID { return h.id }

// Release removes the node and every descendant still attached to it in the
// solver tree, children before parents.
func (h *Handle) Release() {
	stack := []solver.NodeID{h.id}
	var order []solver.NodeID
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)
		stack = append(stack, h.tree.Children(id)...)
	}
	for i := len(order) - 1; i >= 0; i-- {
		h.tree.Remove(order[i])
	}
}

// AttachMeasurement makes the solver size this node with fn.
func (h *Handle) AttachMeasurement(fn solver.MeasureFunc) {
	h.tree.SetMeasureFunc(h.id, fn)
}

// ApplyStyle merges s into the node's solver style.
func (h *Handle) ApplyStyle(s style.Style) {
	style.Apply(h.tree, h.id, s)
}

// Layout returns the node's last computed layout.
func (h *Handle) Layout() solver.Layout {
	return h.tree.Layout(h.id)
}
