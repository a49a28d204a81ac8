package text

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jask/boxtree/internal/solver"
	"github.com/jask/boxtree/internal/style"
)

// Measurer computes intrinsic sizes of text for the layout solver. Natural
// sizes are memoized per string.
type Measurer struct {
	cache       *lru.Cache[string, solver.Size[float64]]
	defaultWrap string
}

// NewMeasurer returns a Measurer caching up to cacheSize natural sizes; a
// non-positive size disables the cache. defaultWrap is used when a node has
// no wrap policy of its own; empty means "wrap".
func NewMeasurer(cacheSize int, defaultWrap string) *Measurer {
	m := &Measurer{defaultWrap: defaultWrap}
	if m.defaultWrap == "" {
		m.defaultWrap = style.WrapReflow
	}
	if cacheSize > 0 {
		if c, err := lru.New[string, solver.Size[float64]](cacheSize); err == nil {
			m.cache = c
		}
	}
	return m
}

// Natural returns NaturalSize(s), served from the cache when possible.
func (m *Measurer) Natural(s string) solver.Size[float64] {
	if m.cache == nil {
		return NaturalSize(s)
	}
	if size, ok := m.cache.Get(s); ok {
		return size
	}
	size := NaturalSize(s)
	m.cache.Add(s, size)
	return size
}

// Policy resolves an empty wrap policy to the default.
func (m *Measurer) Policy(policy string) string {
	if policy == "" {
		return m.defaultWrap
	}
	return policy
}

// Measure returns the size of s when offered width, wrapping with policy.
//
// MaxContent is the natural size. MinContent wraps at the width of the widest
// single character. A definite width that already fits returns the natural
// size, as does a sub-column width for text at least one column wide, which
// cannot be fit at all.
func (m *Measurer) Measure(s, policy string, width solver.AvailableSpace) solver.Size[float64] {
	policy = m.Policy(policy)

	if width.IsMinContent() {
		widest := 1
		for _, r := range s {
			if w := CharWidth(r); w > widest {
				widest = w
			}
		}
		return m.Natural(Wrap(s, widest, policy))
	}

	natural := m.Natural(s)
	if width.IsMaxContent() {
		return natural
	}

	w := width.Value()
	if natural.Width <= w {
		return natural
	}
	if natural.Width >= 1 && w > 0 && w < 1 {
		return natural
	}
	return m.Natural(Wrap(s, int(w), policy))
}
