package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/grid"
)

func (m *Model) startSearch() {
	m.searching = true
	m.query = m.query[:0]
	m.results = nil
	m.cursor = 0
}

func (m *Model) stopSearch() {
	m.searching = false
	m.query = m.query[:0]
	m.results = nil
	m.clampCursor()
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.stopSearch()
		return nil
	case "enter":
		return m.pickAt(m.cursor)
	case "left":
		m.moveLeft()
		return nil
	case "right":
		m.moveRight()
		return nil
	case "up":
		m.moveUp()
		return nil
	case "down":
		m.moveDown()
		return nil
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.runSearch()
		}
		return nil
	}
	if msg.Text != "" {
		m.query = append(m.query, []rune(msg.Text)...)
		m.runSearch()
	}
	return nil
}

func (m *Model) runSearch() {
	m.cursor = 0
	if len(m.query) == 0 {
		m.results = nil
		return
	}
	m.results = m.palette.Search(string(m.query))
}

func (m *Model) resultColumns() int {
	return grid.New(m.palette.HostingWidth(), 0, m.cellWidth, emoji.Recents, nil).OccupiedColumnCount()
}

// visibleResults trims the ranked results to one page.
func (m *Model) visibleResults() []emoji.Symbol {
	limit := m.resultColumns() * emoji.MaxRowsPerPage
	if len(m.results) > limit {
		return m.results[:limit]
	}
	return m.results
}

func (m *Model) resultGrid() *grid.Grid {
	visible := m.visibleResults()
	g := grid.New(m.palette.HostingWidth(), len(visible), m.cellWidth, emoji.Recents, nil)
	for _, sym := range visible {
		g.AddKeyLast(sym)
	}
	return g
}
