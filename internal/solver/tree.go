package solver

import "slices"

// Tree is an in-memory layout tree. Nodes are addressed by NodeID and hold a
// native Style, an ordered child list, an optional measure function and the
// geometry of the last solve pass.
//
// Tree is not safe for concurrent use; callers serialize access.
type Tree struct {
	nodes map[NodeID]*node
	next  NodeID
}

type node struct {
	style     Style
	parent    NodeID
	hasParent bool
	children  []NodeID
	measure   MeasureFunc
	dirty     bool
	layout    Layout
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*node)}
}

// NewNode allocates a detached node with the given style.
func (t *Tree) NewNode(style Style) NodeID {
	t.next++
	id := t.next
	t.nodes[id] = &node{style: style, dirty: true}
	return id
}

// Len reports how many nodes are alive.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Contains reports whether id refers to a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// AddChild appends child to parent's children, detaching it from any
// previous parent first.
func (t *Tree) AddChild(parent, child NodeID) {
	p, ok := t.nodes[parent]
	if !ok {
		return
	}
	c, ok := t.nodes[child]
	if !ok {
		return
	}
	t.detach(child, c)
	p.children = append(p.children, child)
	c.parent = parent
	c.hasParent = true
	t.MarkDirty(parent)
}

// InsertChildAtIndex inserts child at index among parent's children. An index
// past the end appends.
func (t *Tree) InsertChildAtIndex(parent NodeID, index int, child NodeID) {
	p, ok := t.nodes[parent]
	if !ok {
		return
	}
	c, ok := t.nodes[child]
	if !ok {
		return
	}
	t.detach(child, c)
	if index < 0 {
		index = 0
	}
	if index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children, 0)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	c.parent = parent
	c.hasParent = true
	t.MarkDirty(parent)
}

// RemoveChild detaches child from parent. It is a no-op when child is not a
// child of parent.
func (t *Tree) RemoveChild(parent, child NodeID) {
	p, ok := t.nodes[parent]
	if !ok {
		return
	}
	idx := slices.Index(p.children, child)
	if idx < 0 {
		return
	}
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	if c, ok := t.nodes[child]; ok {
		c.hasParent = false
		c.parent = 0
	}
	t.MarkDirty(parent)
}

// Remove deletes id from the tree. The node is detached from its parent and
// its children become roots; they are not freed.
func (t *Tree) Remove(id NodeID) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	t.detach(id, n)
	for _, childID := range n.children {
		if c, ok := t.nodes[childID]; ok {
			c.hasParent = false
			c.parent = 0
		}
	}
	delete(t.nodes, id)
}

// Children returns a copy of id's children in order.
func (t *Tree) Children(id NodeID) []NodeID {
	n, ok := t.nodes[id]
	if !ok || len(n.children) == 0 {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Parent returns id's parent, if any.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n, ok := t.nodes[id]
	if !ok || !n.hasParent {
		return 0, false
	}
	return n.parent, true
}

// MarkDirty flags id and its ancestors as needing layout.
func (t *Tree) MarkDirty(id NodeID) {
	for {
		n, ok := t.nodes[id]
		if !ok {
			return
		}
		n.dirty = true
		if !n.hasParent {
			return
		}
		id = n.parent
	}
}

// Dirty reports whether id needs layout.
func (t *Tree) Dirty(id NodeID) bool {
	n, ok := t.nodes[id]
	return ok && n.dirty
}

// Style returns a copy of id's style. Unknown ids yield the default style.
func (t *Tree) Style(id NodeID) Style {
	n, ok := t.nodes[id]
	if !ok {
		return DefaultStyle()
	}
	return n.style
}

// SetStyle replaces id's style and marks it dirty.
func (t *Tree) SetStyle(id NodeID, style Style) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.style = style
	t.MarkDirty(id)
}

// SetMeasureFunc registers fn as id's measure function. It is only consulted
// while id has no children. A nil fn clears it.
func (t *Tree) SetMeasureFunc(id NodeID, fn MeasureFunc) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.measure = fn
	t.MarkDirty(id)
}

// HasMeasureFunc reports whether id has a measure function.
func (t *Tree) HasMeasureFunc(id NodeID) bool {
	n, ok := t.nodes[id]
	return ok && n.measure != nil
}

// Layout returns the geometry computed for id by the last solve pass.
func (t *Tree) Layout(id NodeID) Layout {
	n, ok := t.nodes[id]
	if !ok {
		return Layout{}
	}
	return n.layout
}

func (t *Tree) detach(id NodeID, n *node) {
	if !n.hasParent {
		return
	}
	if p, ok := t.nodes[n.parent]; ok {
		if idx := slices.Index(p.children, id); idx >= 0 {
			p.children = append(p.children[:idx], p.children[idx+1:]...)
		}
		t.MarkDirty(n.parent)
	}
	n.hasParent = false
	n.parent = 0
}
