package emoji

// Rect locates a symbol in its source layout.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Symbol is a single selectable emoji entry.
type Symbol struct {
	Text string
	Code int
	Name string
	Rect Rect
}

// CodeOf returns the first code point of text, or zero for empty text.
func CodeOf(text string) int {
	for _, r := range text {
		return int(r)
	}
	return 0
}

// Grid is a capacity-bounded page of symbols laid out to a hosting width.
type Grid interface {
	OccupiedColumnCount() int
	AddKeyLast(Symbol)
	SortedKeys() []Symbol
	LoadRecentKeys(cached []Grid)
}

// GridFactory builds grids for a hosting width.
type GridFactory interface {
	NewGrid(width, capacity int, c Category) Grid
}

// SymbolSource supplies the full, unordered symbol set for a category.
type SymbolSource interface {
	SymbolsFor(c Category) []Symbol
}

// Prefs persists small integer settings.
type Prefs interface {
	GetInt(key string, def int) int
	SetInt(key string, value int) error
}

// GlyphProbe reports whether a glyph sequence renders on the host.
type GlyphProbe interface {
	GlyphRenders(seq string) bool
}

// RecentList is the bounded most-recently-used collection backing the recents
// category.
type RecentList interface {
	Entries() []string
	Add(text string) error
}
