package emoji

import (
	"sort"
	"sync"

	"github.com/atomicstack/emoji-palette/internal/logging"
	"github.com/atomicstack/emoji-palette/internal/logging/events"
)

// PageKey identifies one cached page.
type PageKey struct {
	Category Category
	Page     int
}

// Pack encodes the key as category<<32 | page.
func (k PageKey) Pack() uint64 {
	return uint64(uint32(k.Category))<<32 | uint64(uint32(k.Page))
}

// UnpackPageKey reverses PageKey.Pack.
func UnpackPageKey(v uint64) PageKey {
	return PageKey{Category: Category(uint32(v >> 32)), Page: int(uint32(v))}
}

// PageCache memoizes built pages until they are invalidated. A single mutex
// covers lookups, fills and invalidation, so a fill is never observed half
// done and never outlives an invalidation that follows it.
type PageCache struct {
	source     SymbolSource
	grids      GridFactory
	paginator  *Paginator
	width      func() int
	maxRecents int

	mu     sync.Mutex
	pages  map[uint64]Grid
	filled map[Category]int
}

// NewPageCache builds an empty cache. width is consulted on every fill.
func NewPageCache(source SymbolSource, grids GridFactory, paginator *Paginator, width func() int, maxRecents int) *PageCache {
	return &PageCache{
		source:     source,
		grids:      grids,
		paginator:  paginator,
		width:      width,
		maxRecents: maxRecents,
		pages:      make(map[uint64]Grid),
		filled:     make(map[Category]int),
	}
}

// Get returns the page for (c, page), building it on first use. Building any
// page of a regular category builds and stores all of its pages.
func (pc *PageCache) Get(c Category, page int) (Grid, bool) {
	if !c.Valid() || page < 0 {
		logging.Warnf("invalid page request: category=%d page=%d", int(c), page)
		return nil, false
	}
	key := PageKey{Category: c, Page: page}.Pack()

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if grid, ok := pc.pages[key]; ok {
		return grid, true
	}
	if c == Recents {
		if page != 0 {
			logging.Warnf("invalid page %d for category %s", page, c)
			return nil, false
		}
		return pc.buildRecentsLocked(key), true
	}
	if _, done := pc.filled[c]; !done {
		pc.fillLocked(c)
	}
	grid, ok := pc.pages[key]
	if !ok {
		logging.Warnf("invalid page %d for category %s", page, c)
	}
	return grid, ok
}

func (pc *PageCache) buildRecentsLocked(key uint64) Grid {
	grid := pc.grids.NewGrid(pc.width(), pc.maxRecents, Recents)
	grid.LoadRecentKeys(pc.cachedLocked())
	pc.pages[key] = grid
	events.Palette.Recents(len(grid.SortedKeys()), pc.maxRecents)
	return grid
}

func (pc *PageCache) fillLocked(c Category) {
	width := pc.width()
	symbols := pc.source.SymbolsFor(c)
	capacity := pc.paginator.Capacity(width)
	pages := Paginate(symbols, capacity)
	for i, entries := range pages {
		grid := pc.grids.NewGrid(width, capacity, c)
		for _, sym := range entries {
			grid.AddKeyLast(sym)
		}
		pc.pages[PageKey{Category: c, Page: i}.Pack()] = grid
	}
	pc.filled[c] = len(pages)
	events.Palette.Fill(c.String(), len(pages), capacity, len(symbols))
}

// cachedLocked returns every cached grid in key order.
func (pc *PageCache) cachedLocked() []Grid {
	keys := make([]uint64, 0, len(pc.pages))
	for k := range pc.pages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]Grid, 0, len(keys))
	for _, k := range keys {
		out = append(out, pc.pages[k])
	}
	return out
}

// InvalidateAll drops every cached page.
func (pc *PageCache) InvalidateAll() {
	pc.mu.Lock()
	dropped := len(pc.pages)
	pc.pages = make(map[uint64]Grid)
	pc.filled = make(map[Category]int)
	pc.mu.Unlock()
	events.Palette.Invalidate(dropped)
}

// Forget drops a single cached page.
func (pc *PageCache) Forget(c Category, page int) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	delete(pc.pages, PageKey{Category: c, Page: page}.Pack())
}

// Len reports the number of cached pages.
func (pc *PageCache) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.pages)
}
