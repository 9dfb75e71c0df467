// Package grid implements the terminal grid that emoji pages are laid out on.
package grid

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/emoji-palette/internal/emoji"
)

// DefaultCellWidth is the number of terminal cells reserved per key: a
// double-width glyph plus padding.
const DefaultCellWidth = 4

// Factory builds grids sharing one cell width and recents collection.
type Factory struct {
	CellWidth int
	Recents   emoji.RecentList
}

// NewGrid implements emoji.GridFactory.
func (f Factory) NewGrid(width, capacity int, c emoji.Category) emoji.Grid {
	return New(width, capacity, f.CellWidth, c, f.Recents)
}

// Grid is a fixed-capacity page of keys flowed into rows of Columns cells.
type Grid struct {
	category  emoji.Category
	width     int
	capacity  int
	cellWidth int
	columns   int
	recents   emoji.RecentList
	keys      []emoji.Symbol
}

// New sizes a grid for the hosting width. At least one column always fits.
func New(width, capacity, cellWidth int, c emoji.Category, recents emoji.RecentList) *Grid {
	if cellWidth < 1 {
		cellWidth = DefaultCellWidth
	}
	if capacity < 0 {
		capacity = 0
	}
	columns := width / cellWidth
	if columns < 1 {
		columns = 1
	}
	return &Grid{
		category:  c,
		width:     width,
		capacity:  capacity,
		cellWidth: cellWidth,
		columns:   columns,
		recents:   recents,
		keys:      make([]emoji.Symbol, 0, capacity),
	}
}

// OccupiedColumnCount returns how many columns fit the hosting width.
func (g *Grid) OccupiedColumnCount() int {
	return g.columns
}

// Category returns the category the grid was built for.
func (g *Grid) Category() emoji.Category {
	return g.category
}

// Capacity returns the maximum number of keys.
func (g *Grid) Capacity() int {
	return g.capacity
}

// Len returns the number of keys on the grid.
func (g *Grid) Len() int {
	return len(g.keys)
}

// AddKeyLast appends sym. Keys beyond capacity are dropped.
func (g *Grid) AddKeyLast(sym emoji.Symbol) {
	if len(g.keys) >= g.capacity {
		return
	}
	g.keys = append(g.keys, sym)
}

// SortedKeys returns a copy of the keys in slot order.
func (g *Grid) SortedKeys() []emoji.Symbol {
	if len(g.keys) == 0 {
		return nil
	}
	out := make([]emoji.Symbol, len(g.keys))
	copy(out, g.keys)
	return out
}

// At returns the key in slot i.
func (g *Grid) At(i int) (emoji.Symbol, bool) {
	if i < 0 || i >= len(g.keys) {
		return emoji.Symbol{}, false
	}
	return g.keys[i], true
}

// LoadRecentKeys fills the grid from the recents collection. Each recent
// text is matched against the keys of cached so the entry carries its full
// metadata; unmatched texts become bare symbols.
func (g *Grid) LoadRecentKeys(cached []emoji.Grid) {
	if g.recents == nil {
		return
	}
	known := make(map[string]emoji.Symbol)
	for _, other := range cached {
		if other == nil {
			continue
		}
		for _, key := range other.SortedKeys() {
			if _, ok := known[key.Text]; !ok {
				known[key.Text] = key
			}
		}
	}
	g.keys = g.keys[:0]
	for _, text := range g.recents.Entries() {
		if len(g.keys) >= g.capacity {
			break
		}
		sym, ok := known[text]
		if !ok {
			sym = emoji.Symbol{Text: text, Code: emoji.CodeOf(text)}
		}
		g.keys = append(g.keys, sym)
	}
}

// Rows splits the keys into rows of OccupiedColumnCount entries.
func (g *Grid) Rows() [][]emoji.Symbol {
	if len(g.keys) == 0 {
		return nil
	}
	rows := make([][]emoji.Symbol, 0, (len(g.keys)-1)/g.columns+1)
	for start := 0; start < len(g.keys); start += g.columns {
		end := start + g.columns
		if end > len(g.keys) {
			end = len(g.keys)
		}
		rows = append(rows, g.keys[start:end])
	}
	return rows
}

// Render draws the grid with the key in slot cursor highlighted. Symbols
// wider than a cell are truncated.
func (g *Grid) Render(cursor int, cell, selected lipgloss.Style) string {
	rows := g.Rows()
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rows))
	for r, row := range rows {
		cells := make([]string, 0, len(row))
		for c, sym := range row {
			style := cell
			if r*g.columns+c == cursor {
				style = selected
			}
			cells = append(cells, style.Render(g.fit(sym.Text)))
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) fit(text string) string {
	if ansi.StringWidth(text) > g.cellWidth {
		text = ansi.Truncate(text, g.cellWidth, "")
	}
	pad := g.cellWidth - ansi.StringWidth(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
