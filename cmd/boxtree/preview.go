package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle  = lipgloss.NewStyle().Faint(true)
	helpKeyStyle = lipgloss.NewStyle().Bold(true)
)

type keyMap struct {
	Table key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Table: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle table")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Table, k.Quit}
}

type previewModel struct {
	s         *session
	file      string
	keys      keyMap
	showTable bool
	width     int
	height    int
	ready     bool
}

func newPreviewModel(s *session, file string) previewModel {
	return previewModel{s: s, file: filepath.Base(file), keys: newKeyMap()}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// last row is the status line
		m.s.solve(m.width, max(m.height-1, 1))
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Table):
			m.showTable = !m.showTable
		}
		return m, nil
	}
	return m, nil
}

func (m previewModel) View() string {
	if !m.ready {
		return "solving..."
	}

	body := m.s.paint()
	if m.showTable {
		body = m.s.table()
	}
	return m.placeWithStatus(body, m.renderStatus())
}

func (m previewModel) renderStatus() string {
	parts := []string{m.file, fmt.Sprintf("%dx%d", m.width, max(m.height-1, 1))}
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, helpKeyStyle.Render(help.Key)+" "+help.Desc)
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

// placeWithStatus pins the status line to the last row, clipping the body
// to the rows above it.
func (m previewModel) placeWithStatus(body, status string) string {
	if m.height == 0 {
		return body + "\n" + status
	}
	contentHeight := max(m.height-1, 1)
	lines := strings.Split(body, "\n")
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
	return main + "\n" + status
}
