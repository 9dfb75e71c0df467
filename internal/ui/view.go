package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const footerHint = "←↑↓→ move · tab category · [ ] page · / search · enter pick · q quit"

// renderer is implemented by grids that can draw themselves.
type renderer interface {
	Render(cursor int, cell, selected lipgloss.Style) string
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render draws the palette as plain text with styling escapes.
func (m *Model) Render() string {
	lines := []string{
		m.renderTabs(),
		styles.Header.Render(m.header()),
		m.renderBody(),
	}
	if !m.searching && m.pager.TotalPages > 1 {
		lines = append(lines, styles.Pager.Render(m.pager.View()))
	}
	if info := m.infoLine(); info != "" {
		lines = append(lines, info)
	}
	if m.showFooter {
		lines = append(lines, styles.Footer.Render(footerHint))
	}
	for i, line := range lines {
		lines[i] = m.clip(line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTabs() string {
	current := m.palette.CurrentCategory()
	shown := m.palette.ShownCategories()
	tabs := make([]string, 0, len(shown))
	for _, c := range shown {
		style := styles.Tab
		if c == current && !m.searching {
			style = styles.ActiveTab
		}
		tabs = append(tabs, style.Render(m.palette.Icon(c)))
	}
	return strings.Join(tabs, "")
}

func (m *Model) header() string {
	if m.searching {
		return "Search: " + string(m.query)
	}
	c := m.palette.CurrentCategory()
	name := m.title.String(m.palette.Name(c))
	count := m.palette.PageCount(c)
	if count <= 1 {
		return name
	}
	return fmt.Sprintf("%s %d/%d", name, m.palette.CurrentPage()+1, count)
}

func (m *Model) renderBody() string {
	if m.searching {
		if len(m.query) == 0 {
			return styles.Info.Render("type to search by name")
		}
		if len(m.results) == 0 {
			return styles.Info.Render("no matches")
		}
		return m.resultGrid().Render(m.cursor, *styles.Cell, *styles.SelectedCell)
	}
	page, ok := m.currentPage()
	if !ok || len(page.SortedKeys()) == 0 {
		if m.palette.InRecents() {
			return styles.Info.Render("no recent emoji yet")
		}
		return styles.Info.Render("nothing to show here")
	}
	r, ok := page.(renderer)
	if !ok {
		return ""
	}
	return r.Render(m.cursor, *styles.Cell, *styles.SelectedCell)
}

func (m *Model) infoLine() string {
	if m.errMsg != "" {
		return styles.Error.Render(m.errMsg)
	}
	keys := m.currentKeys()
	if m.cursor < 0 || m.cursor >= len(keys) {
		return ""
	}
	name := keys[m.cursor].Name
	if name == "" {
		return ""
	}
	return styles.Info.Render(name)
}

func (m *Model) clip(line string) string {
	if m.width <= 0 {
		return line
	}
	var b strings.Builder
	for i, part := range strings.Split(line, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ansi.Truncate(part, m.width, ""))
	}
	return b.String()
}
