package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"pinboard/internal/apiclient"
)

// Canvas switcher: fuzzy search over canvas names, entered with ctrl+/.

func (m *Model) openSearch() tea.Cmd {
	m.mode = ModeSearch
	m.searchQuery = nil
	m.searchCursor = 0
	m.searchMatches = nil
	return m.listCanvasesCmd()
}

func (m *Model) filterSearch() {
	query := string(m.searchQuery)
	if query == "" {
		m.searchMatches = m.searchCanvases
	} else {
		names := make([]string, len(m.searchCanvases))
		for i, c := range m.searchCanvases {
			names[i] = c.Name
		}
		matches := fuzzy.Find(query, names)
		out := make([]apiclient.Canvas, 0, len(matches))
		for _, match := range matches {
			out = append(out, m.searchCanvases[match.Index])
		}
		m.searchMatches = out
	}
	if m.searchCursor >= len(m.searchMatches) {
		m.searchCursor = 0
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeCanvas
		return m, nil
	case tea.KeyEnter:
		if m.searchCursor < len(m.searchMatches) {
			target := m.searchMatches[m.searchCursor]
			m.mode = ModeCanvas
			return m, m.loadCanvasCmd(target)
		}
		return m, nil
	case tea.KeyUp:
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.searchCursor < len(m.searchMatches)-1 {
			m.searchCursor++
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.filterSearch()
		}
		return m, nil
	case tea.KeySpace:
		m.searchQuery = append(m.searchQuery, ' ')
		m.filterSearch()
		return m, nil
	case tea.KeyRunes:
		m.searchQuery = append(m.searchQuery, msg.Runes...)
		m.filterSearch()
		return m, nil
	}
	return m, nil
}
