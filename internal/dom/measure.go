package dom

import (
	"strings"

	"github.com/jask/boxtree/internal/solver"
)

// Squash concatenates every text leaf under n in document order. Nested
// elements of any kind are descended into.
func Squash(n Node) string {
	if t, ok := n.(*Text); ok {
		return t.value
	}
	var b strings.Builder
	squashInto(&b, n)
	return b.String()
}

func squashInto(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		b.WriteString(v.value)
	case *Element:
		for _, c := range v.children {
			squashInto(b, c)
		}
	}
}

// ContentWidth is the width inside the padding and border of a laid out
// node.
func ContentWidth(l solver.Layout) float64 {
	return l.Width - l.Padding.Left - l.Padding.Right - l.Border.Left - l.Border.Right
}
