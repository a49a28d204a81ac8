package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/boxtree/internal/config"
	"github.com/jask/boxtree/internal/document"
	"github.com/jask/boxtree/internal/solver"
)

const framed = `
[root]

[[root.children]]
kind = "box"
name = "frame"
style = { borderStyle = "single", paddingX = 1 }

  [[root.children.children]]
  kind = "text"
  name = "greeting"
  text = "hello world"
`

func testConfig() config.Config {
	return config.Config{
		Layout: config.LayoutConfig{Width: 9},
		Text:   config.TextConfig{Wrap: "wrap", CacheSize: 16},
	}
}

func newTestSession(t *testing.T, src string) *session {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)
	s, err := buildSession(testConfig(), doc)
	require.NoError(t, err)
	return s
}

func TestSpace(t *testing.T) {
	require.True(t, space(0).IsMaxContent())
	require.True(t, space(-1).IsMaxContent())
	require.Equal(t, solver.Definite(12), space(12))
}

func TestSessionPaint(t *testing.T) {
	s := newTestSession(t, framed)
	s.solve(9, 0)

	want := strings.Join([]string{
		"┌───────┐",
		"│ hello │",
		"│ world │",
		"└───────┘",
	}, "\n")
	require.Equal(t, want, s.paint())
}

func TestSessionTable(t *testing.T) {
	s := newTestSession(t, framed)
	s.solve(9, 0)

	out := s.table()
	require.Contains(t, out, "NODE")
	require.Contains(t, out, "frame (box)")
	require.Contains(t, out, "greeting (text)")

	placed := s.walk()
	require.Len(t, placed, 3)
	require.Equal(t, 2.0, placed[2].x)
	require.Equal(t, 1.0, placed[2].y)
	require.Equal(t, 5.0, placed[2].layout.Width)
}

func TestCanvasWideRunes(t *testing.T) {
	c := newCanvas(4, 1)
	c.put(0, 0, "界界界", 4)
	require.Equal(t, "界界", c.String())

	c = newCanvas(3, 1)
	c.put(1, 0, "ab", 2)
	require.Equal(t, " a", c.String())
}

func TestPreviewResolvesOnResize(t *testing.T) {
	s := newTestSession(t, framed)
	m := newPreviewModel(s, "/tmp/framed.toml")
	require.Equal(t, "solving...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 9, Height: 6})
	m = next.(previewModel)
	view := m.View()
	require.Contains(t, view, "│ hello │")
	require.Contains(t, view, "framed.toml")
	require.Contains(t, view, "q quit")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 15, Height: 6})
	m = next.(previewModel)
	require.Contains(t, m.View(), "│ hello world │")
}

func TestPreviewKeys(t *testing.T) {
	s := newTestSession(t, framed)
	var m tea.Model = newPreviewModel(s, "framed.toml")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.True(t, m.(previewModel).showTable)
	require.Contains(t, m.View(), "NODE")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
