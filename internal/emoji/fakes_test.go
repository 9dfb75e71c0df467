package emoji

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/atomicstack/emoji-palette/internal/logging"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "emoji-test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "temp dir: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeGrid struct {
	columns  int
	capacity int
	category Category
	keys     []Symbol
	recents  []string
	seeded   int
}

func (g *fakeGrid) OccupiedColumnCount() int { return g.columns }

func (g *fakeGrid) AddKeyLast(sym Symbol) {
	if len(g.keys) >= g.capacity {
		return
	}
	g.keys = append(g.keys, sym)
}

func (g *fakeGrid) SortedKeys() []Symbol {
	out := make([]Symbol, len(g.keys))
	copy(out, g.keys)
	return out
}

func (g *fakeGrid) LoadRecentKeys(cached []Grid) {
	g.seeded = len(cached)
	for _, text := range g.recents {
		sym := Symbol{Text: text, Code: CodeOf(text)}
		for _, other := range cached {
			for _, key := range other.SortedKeys() {
				if key.Text == text {
					sym = key
				}
			}
		}
		g.AddKeyLast(sym)
	}
}

type fakeFactory struct {
	cellWidth int
	recents   *fakeRecents

	mu    sync.Mutex
	built int
}

func (f *fakeFactory) NewGrid(width, capacity int, c Category) Grid {
	f.mu.Lock()
	f.built++
	f.mu.Unlock()
	g := &fakeGrid{columns: width / f.cellWidth, capacity: capacity, category: c}
	if f.recents != nil {
		g.recents = f.recents.Entries()
	}
	return g
}

func (f *fakeFactory) Built() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.built
}

type fakeSource struct {
	data map[Category][]Symbol

	mu    sync.Mutex
	calls map[Category]int
}

func newFakeSource(data map[Category][]Symbol) *fakeSource {
	return &fakeSource{data: data, calls: make(map[Category]int)}
}

func (s *fakeSource) SymbolsFor(c Category) []Symbol {
	s.mu.Lock()
	s.calls[c]++
	s.mu.Unlock()
	return s.data[c]
}

func (s *fakeSource) Calls(c Category) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[c]
}

type memPrefs struct {
	mu      sync.Mutex
	values  map[string]int
	failSet bool
}

func newMemPrefs(values map[string]int) *memPrefs {
	if values == nil {
		values = map[string]int{}
	}
	return &memPrefs{values: values}
}

func (p *memPrefs) GetInt(key string, def int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

func (p *memPrefs) SetInt(key string, value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSet {
		return errors.New("disk full")
	}
	p.values[key] = value
	return nil
}

type staticProbe bool

func (s staticProbe) GlyphRenders(string) bool { return bool(s) }

type fakeRecents struct {
	mu      sync.Mutex
	entries []string
	failAdd error
}

var _ RecentList = (*fakeRecents)(nil)

func (r *fakeRecents) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.entries...)
}

func (r *fakeRecents) Add(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]string{text}, r.entries...)
	return r.failAdd
}

// layoutSymbols lays n symbols out row-major in a grid of cols columns.
func layoutSymbols(n, cols int) []Symbol {
	out := make([]Symbol, n)
	for i := 0; i < n; i++ {
		code := 0x1F600 + i
		out[i] = Symbol{
			Text: string(rune(code)),
			Code: code,
			Name: fmt.Sprintf("symbol %d", i),
			Rect: Rect{Top: (i / cols) * 10, Left: (i % cols) * 10, Width: 10, Height: 10},
		}
	}
	return out
}

func texts(symbols []Symbol) []string {
	out := make([]string, len(symbols))
	for i, sym := range symbols {
		out[i] = sym.Text
	}
	return out
}
