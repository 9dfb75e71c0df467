package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if m.errMsg != "" && m.selected != "" {
		return tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "enter":
		return m.pickAt(m.cursor)
	case "/":
		m.startSearch()
	case "left":
		m.moveLeft()
	case "right":
		m.moveRight()
	case "up":
		m.moveUp()
	case "down":
		m.moveDown()
	case "pgdown", "]":
		m.turnPage(1)
	case "pgup", "[":
		m.turnPage(-1)
	case "tab":
		m.switchCategory(1)
	case "shift+tab":
		m.switchCategory(-1)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(size.Width, size.Height)
	if !m.fixedHeight {
		m.height = size.Height
	}
	if m.fixedWidth || size.Width <= 0 {
		return nil
	}
	m.width = size.Width
	m.palette.SetHostingWidth(size.Width)
	m.clampPosition()
	return nil
}

// currentKeys returns the keys of the page the user is on.
func (m *Model) currentKeys() []emoji.Symbol {
	if m.searching {
		return m.visibleResults()
	}
	page, ok := m.currentPage()
	if !ok {
		return nil
	}
	return page.SortedKeys()
}

// currentPage returns the active page. Empty categories have none.
func (m *Model) currentPage() (emoji.Grid, bool) {
	if m.palette.CurrentPageCount() == 0 {
		return nil, false
	}
	page, ok := m.palette.Page(m.palette.CurrentCategory(), m.palette.CurrentPage())
	if !ok || page == nil {
		return nil, false
	}
	return page, true
}

func (m *Model) columns() int {
	if m.searching {
		return m.resultColumns()
	}
	if page, ok := m.currentPage(); ok {
		return page.OccupiedColumnCount()
	}
	return m.resultColumns()
}

func (m *Model) moveLeft() {
	if m.cursor > 0 {
		m.cursor--
		return
	}
	if m.searching {
		return
	}
	if m.setPage(m.palette.CurrentPage() - 1) {
		m.cursor = len(m.currentKeys()) - 1
	}
}

func (m *Model) moveRight() {
	if m.cursor < len(m.currentKeys())-1 {
		m.cursor++
		return
	}
	if m.searching {
		return
	}
	if m.setPage(m.palette.CurrentPage() + 1) {
		m.cursor = 0
	}
}

func (m *Model) moveUp() {
	cols := m.columns()
	if m.cursor-cols >= 0 {
		m.cursor -= cols
		return
	}
	if m.searching {
		return
	}
	col := m.cursor % cols
	if !m.setPage(m.palette.CurrentPage() - 1) {
		return
	}
	n := len(m.currentKeys())
	if n == 0 {
		m.cursor = 0
		return
	}
	lastRow := (n - 1) / cols
	m.cursor = min(lastRow*cols+col, n-1)
}

func (m *Model) moveDown() {
	cols := m.columns()
	n := len(m.currentKeys())
	if m.cursor+cols < n {
		m.cursor += cols
		return
	}
	if m.searching {
		return
	}
	col := m.cursor % cols
	if !m.setPage(m.palette.CurrentPage() + 1) {
		return
	}
	m.cursor = min(col, max(len(m.currentKeys())-1, 0))
}

func (m *Model) turnPage(delta int) {
	if m.searching {
		return
	}
	if m.setPage(m.palette.CurrentPage() + delta) {
		m.clampCursor()
	}
}

// setPage moves to page within the current category. It reports false when
// page is out of range.
func (m *Model) setPage(page int) bool {
	c := m.palette.CurrentCategory()
	count := m.palette.PageCount(c)
	if page < 0 || page >= count {
		return false
	}
	m.palette.SetCurrentPage(page)
	m.syncPager()
	events.UI.Page(c.String(), page, count)
	return true
}

func (m *Model) switchCategory(delta int) {
	shown := m.palette.ShownCategories()
	if len(shown) == 0 {
		return
	}
	idx := m.palette.TabIndex(m.palette.CurrentCategory())
	idx = (idx + delta + len(shown)) % len(shown)
	next := shown[idx]
	m.palette.SetCurrentCategory(next)
	m.palette.SetCurrentPage(0)
	m.cursor = 0
	m.syncPager()
	events.UI.Category(next.String(), idx)
}

// clampPosition pulls the page and cursor back into range after the page
// layout changed.
func (m *Model) clampPosition() {
	count := m.palette.CurrentPageCount()
	if page := m.palette.CurrentPage(); count > 0 && page >= count {
		m.palette.SetCurrentPage(count - 1)
	}
	m.syncPager()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.currentKeys())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) syncPager() {
	m.pager.TotalPages = max(m.palette.CurrentPageCount(), 1)
	m.pager.Page = m.palette.CurrentPage()
}

func (m *Model) pickAt(i int) tea.Cmd {
	keys := m.currentKeys()
	if i < 0 || i >= len(keys) {
		return nil
	}
	sym := keys[i]
	err := m.palette.Pick(sym)
	m.selected = sym.Text
	events.UI.Select(sym.Text)
	if err != nil {
		// Keep the palette up until the failure has been seen.
		m.errMsg = fmt.Sprintf("recents not saved: %v (press any key)", err)
		return nil
	}
	return tea.Quit
}
