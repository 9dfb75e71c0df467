// Package symbols loads the emoji catalogue the palette pages through.
package symbols

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/emoji-palette/internal/emoji"
)

//go:embed data/emoji.yaml
var embedded []byte

// DefaultColumns is the layout width used when a catalogue omits columns.
const DefaultColumns = 8

type entry struct {
	Text string `yaml:"text"`
	Name string `yaml:"name"`
}

type catalogue struct {
	Columns    int                `yaml:"columns"`
	Categories map[string][]entry `yaml:"categories"`
}

// Set is a parsed catalogue. Symbols carry the rectangle they occupy in the
// catalogue's own row-major layout.
type Set struct {
	columns int

	// keyed by layout slot; map iteration hands out symbols unordered
	byCategory map[emoji.Category]map[int]emoji.Symbol
}

// Load parses the built-in catalogue.
func Load() (*Set, error) {
	return Parse(embedded)
}

// LoadFile parses the catalogue at path. An empty path selects the
// built-in catalogue.
func LoadFile(path string) (*Set, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emoji data: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalogue keyed by category source id.
func Parse(data []byte) (*Set, error) {
	var cat catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse emoji data: %w", err)
	}
	if len(cat.Categories) == 0 {
		return nil, errors.New("emoji data has no categories")
	}
	columns := cat.Columns
	if columns <= 0 {
		columns = DefaultColumns
	}
	set := &Set{columns: columns, byCategory: make(map[emoji.Category]map[int]emoji.Symbol)}
	for key, entries := range cat.Categories {
		c, ok := emoji.ParseCategory(key)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", key)
		}
		if c == emoji.Recents {
			return nil, errors.New("recents cannot be seeded from emoji data")
		}
		slots := make(map[int]emoji.Symbol, len(entries))
		for i, e := range entries {
			if e.Text == "" {
				return nil, fmt.Errorf("category %q entry %d: empty text", key, i)
			}
			slots[i] = emoji.Symbol{
				Text: e.Text,
				Code: emoji.CodeOf(e.Text),
				Name: e.Name,
				Rect: emoji.Rect{Top: i / columns, Left: i % columns, Width: 1, Height: 1},
			}
		}
		set.byCategory[c] = slots
	}
	return set, nil
}

// SymbolsFor implements emoji.SymbolSource. The returned slice is in no
// particular order.
func (s *Set) SymbolsFor(c emoji.Category) []emoji.Symbol {
	slots := s.byCategory[c]
	if len(slots) == 0 {
		return nil
	}
	out := make([]emoji.Symbol, 0, len(slots))
	for _, sym := range slots {
		out = append(out, sym)
	}
	return out
}

// Len reports how many symbols c holds.
func (s *Set) Len(c emoji.Category) int {
	return len(s.byCategory[c])
}

// Columns returns the catalogue layout width.
func (s *Set) Columns() int {
	return s.columns
}

// Categories lists the categories present in the catalogue, ascending.
func (s *Set) Categories() []emoji.Category {
	out := make([]emoji.Category, 0, len(s.byCategory))
	for c := range s.byCategory {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
