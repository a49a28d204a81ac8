package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/boxtree/internal/config"
	"github.com/jask/boxtree/internal/document"
	"github.com/jask/boxtree/internal/dom"
	"github.com/jask/boxtree/internal/solver"
	"github.com/jask/boxtree/internal/style"
	"github.com/jask/boxtree/internal/text"
)

// session is a built document ready to be solved and rendered.
type session struct {
	m        *dom.Manager
	measurer *text.Measurer
	root     *dom.Element
	names    map[*dom.Element]string
}

func newSession(cfg config.Config, path string) (*session, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return buildSession(cfg, doc)
}

func buildSession(cfg config.Config, doc document.Document) (*session, error) {
	measurer := text.NewMeasurer(cfg.Text.CacheSize, cfg.Text.Wrap)
	var opts []dom.Option
	if cfg.Debug {
		opts = append(opts, dom.WithLogger(log.New(os.Stderr, "boxtree: ", log.LstdFlags)))
	}
	m := dom.NewManager(solver.NewTree(), measurer, opts...)

	root, named, err := document.Build(m, doc)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}
	names := make(map[*dom.Element]string, len(named))
	for _, n := range named {
		names[n.Element] = n.Name
	}
	return &session{m: m, measurer: measurer, root: root, names: names}, nil
}

// space converts a configured extent to available space; zero is unbounded.
func space(n int) solver.AvailableSpace {
	if n <= 0 {
		return solver.MaxContent
	}
	return solver.Definite(float64(n))
}

func (s *session) solve(width, height int) {
	s.m.ComputeLayout(s.root, space(width), space(height))
}

// placed is an element with its absolute position.
type placed struct {
	el     *dom.Element
	depth  int
	x, y   float64
	layout solver.Layout
}

// walk lists every element with a layout in document order.
func (s *session) walk() []placed {
	var out []placed
	var visit func(el *dom.Element, depth int, ox, oy float64)
	visit = func(el *dom.Element, depth int, ox, oy float64) {
		h := el.Handle()
		if h == nil {
			return
		}
		l := h.Layout()
		x, y := ox+l.Left, oy+l.Top
		out = append(out, placed{el: el, depth: depth, x: x, y: y, layout: l})
		for _, c := range el.Children() {
			if child, ok := c.(*dom.Element); ok {
				visit(child, depth+1, x, y)
			}
		}
	}
	visit(s.root, 0, 0, 0)
	return out
}

func (s *session) label(el *dom.Element) string {
	if name, ok := s.names[el]; ok {
		return fmt.Sprintf("%s (%s)", name, el.Kind())
	}
	return el.Kind().String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// table renders the solved geometry of every element.
func (s *session) table() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NODE", "X", "Y", "W", "H", "INNER")
	for _, p := range s.walk() {
		t.Row(
			strings.Repeat("  ", p.depth)+s.label(p.el),
			num(p.x),
			num(p.y),
			num(p.layout.Width),
			num(p.layout.Height),
			num(dom.ContentWidth(p.layout)),
		)
	}
	return t.String()
}

// paint draws bordered elements and text containers onto a character grid
// the size of the solved root.
func (s *session) paint() string {
	rl := s.root.Handle().Layout()
	c := newCanvas(int(math.Ceil(rl.Width)), int(math.Ceil(rl.Height)))
	border := lipgloss.NormalBorder()

	for _, p := range s.walk() {
		x, y := int(math.Round(p.x)), int(math.Round(p.y))
		w, h := int(math.Round(p.layout.Width)), int(math.Round(p.layout.Height))
		if w <= 0 || h <= 0 {
			continue
		}

		if st := p.el.Style(); st.Has(style.KeyBorderStyle) && p.layout.Border.Top > 0 && w >= 2 && h >= 2 {
			c.box(x, y, w, h, border)
		}

		if p.el.Kind() != dom.KindText {
			continue
		}
		inner := int(dom.ContentWidth(p.layout))
		left := x + int(p.layout.Border.Left+p.layout.Padding.Left)
		top := y + int(p.layout.Border.Top+p.layout.Padding.Top)
		bottom := y + h - int(p.layout.Border.Bottom+p.layout.Padding.Bottom)

		wrapped := text.Wrap(dom.Squash(p.el), inner, s.measurer.Policy(p.el.Style().TextWrap()))
		for i, line := range strings.Split(wrapped, "\n") {
			if top+i >= bottom {
				break
			}
			c.put(left, top+i, line, left+inner)
		}
	}
	return c.String()
}

type canvas struct {
	w, h  int
	cells [][]string
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]string, h)}
	for y := range c.cells {
		row := make([]string, w)
		for x := range row {
			row[x] = " "
		}
		c.cells[y] = row
	}
	return c
}

// put writes s at (x, y), stopping before column limit. Wide runes take
// their full width; the cells they cover are left empty.
func (c *canvas) put(x, y int, s string, limit int) {
	if y < 0 || y >= c.h {
		return
	}
	if limit > c.w {
		limit = c.w
	}
	for _, r := range s {
		rw := text.CharWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > limit {
			return
		}
		if x >= 0 {
			c.cells[y][x] = string(r)
			for i := 1; i < rw; i++ {
				c.cells[y][x+i] = ""
			}
		}
		x += rw
	}
}

func (c *canvas) box(x, y, w, h int, b lipgloss.Border) {
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		c.put(i, y, b.Top, c.w)
		c.put(i, bottom, b.Bottom, c.w)
	}
	for j := y + 1; j < bottom; j++ {
		c.put(x, j, b.Left, c.w)
		c.put(right, j, b.Right, c.w)
	}
	c.put(x, y, b.TopLeft, c.w)
	c.put(right, y, b.TopRight, c.w)
	c.put(x, bottom, b.BottomLeft, c.w)
	c.put(right, bottom, b.BottomRight, c.w)
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		lines[y] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return strings.Join(lines, "\n")
}
