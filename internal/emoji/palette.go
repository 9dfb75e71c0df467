package emoji

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/atomicstack/emoji-palette/internal/logging"
	"github.com/atomicstack/emoji-palette/internal/logging/events"
)

const (
	// DefaultMaxRecents bounds the recents page when no limit is configured.
	DefaultMaxRecents = 32

	// flagProbe is the Swiss flag, U+1F1E8 U+1F1ED.
	flagProbe = "\U0001F1E8\U0001F1ED"
)

// shownOrder is the tab order of categories offered to the user.
var shownOrder = []Category{
	Recents,
	SmileysEmotion,
	PeopleBody,
	AnimalsNature,
	FoodDrink,
	TravelPlaces,
	Activities,
	Objects,
	Symbols,
	Flags,
	Emoticons,
}

// Options wires a Palette to its collaborators.
type Options struct {
	Source          SymbolSource
	Grids           GridFactory
	Prefs           Prefs
	Probe           GlyphProbe
	Recents         RecentList
	Width           int
	MaxRecents      int
	DefaultCategory Category
}

// pageCount is a derived value that is recomputed on read once stale.
type pageCount struct {
	value int
	fresh bool
}

type shownCategory struct {
	id    Category
	count pageCount
}

// Palette is the controller the UI talks to. It owns the shown category
// list, the page cache and the session.
type Palette struct {
	source          SymbolSource
	probe           GlyphProbe
	recents         RecentList
	defaultCategory Category

	width     atomic.Int64
	paginator *Paginator
	cache     *PageCache
	session   *Session

	mu    sync.Mutex
	shown []*shownCategory
}

// New builds a Palette. Call Initialize before reading pages.
func New(opts Options) *Palette {
	maxRecents := opts.MaxRecents
	if maxRecents <= 0 {
		maxRecents = DefaultMaxRecents
	}
	def := opts.DefaultCategory
	if !def.Valid() || def == Recents {
		def = SmileysEmotion
	}
	prefs := opts.Prefs
	if prefs == nil {
		prefs = discardPrefs{}
	}
	recents := opts.Recents
	if recents == nil {
		recents = noRecents{}
	}
	p := &Palette{
		source:          opts.Source,
		probe:           opts.Probe,
		recents:         recents,
		defaultCategory: def,
		paginator:       NewPaginator(opts.Grids),
		session:         NewSession(prefs),
	}
	p.width.Store(int64(opts.Width))
	p.cache = NewPageCache(opts.Source, opts.Grids, p.paginator, p.HostingWidth, maxRecents)
	return p
}

// Initialize decides which categories are shown, builds the recents page and
// restores the session.
func (p *Palette) Initialize() {
	showFlags := p.probe == nil || p.probe.GlyphRenders(flagProbe)

	p.mu.Lock()
	p.shown = p.shown[:0]
	names := make([]string, 0, len(shownOrder))
	for _, c := range shownOrder {
		if c == Flags && !showFlags {
			continue
		}
		p.shown = append(p.shown, &shownCategory{id: c})
		names = append(names, c.String())
	}
	if p.findLocked(p.defaultCategory) == nil {
		p.defaultCategory = SmileysEmotion
	}
	def := p.defaultCategory
	p.mu.Unlock()
	events.Palette.Shown(names)

	recentsPage, _ := p.cache.Get(Recents, 0)
	recentsEmpty := func() bool {
		return recentsPage == nil || len(recentsPage.SortedKeys()) == 0
	}
	p.session.Initialize(p.ShownCategories(), def, recentsEmpty, p.PageCount)
}

// ClearCache drops every cached page and marks every page count stale.
func (p *Palette) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sc := range p.shown {
		sc.count.fresh = false
	}
	p.cache.InvalidateAll()
}

// HostingWidth returns the width pages are laid out for.
func (p *Palette) HostingWidth() int {
	return int(p.width.Load())
}

// SetHostingWidth changes the layout width. A change invalidates every page.
func (p *Palette) SetHostingWidth(width int) {
	old := int(p.width.Swap(int64(width)))
	if old == width {
		return
	}
	events.Palette.Width(old, width)
	p.ClearCache()
}

// ShownCategories lists the visible categories in tab order.
func (p *Palette) ShownCategories() []Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Category, len(p.shown))
	for i, sc := range p.shown {
		out[i] = sc.id
	}
	return out
}

func (p *Palette) findLocked(c Category) *shownCategory {
	for _, sc := range p.shown {
		if sc.id == c {
			return sc
		}
	}
	return nil
}

// PageCount returns the number of pages for c at the current width.
func (p *Palette) PageCount(c Category) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	sc := p.findLocked(c)
	if sc == nil {
		logging.Warnf("invalid category id: %d", int(c))
		return 0
	}
	if !sc.count.fresh {
		sc.count = pageCount{value: p.computePageCount(c), fresh: true}
	}
	return sc.count.value
}

func (p *Palette) computePageCount(c Category) int {
	if c == Recents {
		return 1
	}
	if p.source == nil {
		return 0
	}
	return PageCountFor(len(p.source.SymbolsFor(c)), p.paginator.Capacity(p.HostingWidth()))
}

// Page returns page of category c, or false when the position is out of range.
func (p *Palette) Page(c Category, page int) (Grid, bool) {
	if page >= 0 && page < p.PageCount(c) {
		return p.cache.Get(c, page)
	}
	logging.Warnf("invalid position %d for category %s", page, c)
	return nil, false
}

// CurrentCategory returns the category the user is on.
func (p *Palette) CurrentCategory() Category {
	return p.session.Category()
}

// CurrentPage returns the page the user is on.
func (p *Palette) CurrentPage() int {
	return p.session.Page()
}

// SetCurrentCategory records the active category.
// Unknown or hidden categories are logged and still recorded.
func (p *Palette) SetCurrentCategory(c Category) {
	p.mu.Lock()
	shown := c.Valid() && p.findLocked(c) != nil
	p.mu.Unlock()
	if !shown {
		logging.Warnf("current category %d is not shown", int(c))
	}
	p.session.SetCategory(c)
}

// SetCurrentPage records the active page.
func (p *Palette) SetCurrentPage(page int) {
	p.session.SetPage(page)
}

// CurrentPageCount returns the page count of the active category.
func (p *Palette) CurrentPageCount() int {
	return p.PageCount(p.CurrentCategory())
}

// InRecents reports whether the recents tab is active.
func (p *Palette) InRecents() bool {
	return p.CurrentCategory() == Recents
}

// TabIndex returns the tab position of c, or zero when c is not shown.
func (p *Palette) TabIndex(c Category) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, sc := range p.shown {
		if sc.id == c {
			return i
		}
	}
	logging.Warnf("category not shown: %d", int(c))
	return 0
}

// RecentsTabIndex returns the tab position of the recents category.
func (p *Palette) RecentsTabIndex() int {
	return p.TabIndex(Recents)
}

func (p *Palette) Name(c Category) string        { return Describe(c).Name }
func (p *Palette) Icon(c Category) string        { return Describe(c).Icon }
func (p *Palette) Description(c Category) string { return Describe(c).Description }

// PageName returns the stable key for a category page.
func (p *Palette) PageName(c Category, page int) string {
	return PageName(c, page)
}

// IDForName resolves a page name back to its category.
func (p *Palette) IDForName(name string) (Category, bool) {
	return IDForName(name)
}

// Pick records sym as recently used. The recents page is rebuilt on its next
// read. A failure to persist the list is logged and returned; the in-memory
// list is still updated.
func (p *Palette) Pick(sym Symbol) error {
	if sym.Text == "" {
		return nil
	}
	err := p.recents.Add(sym.Text)
	if err != nil {
		err = fmt.Errorf("record recent %q: %w", sym.Text, err)
		logging.Error(err)
	}
	p.cache.Forget(Recents, 0)
	events.Palette.Pick(sym.Text)
	return err
}

// Search ranks the symbols of every shown category by name.
func (p *Palette) Search(query string) []Symbol {
	if p.source == nil {
		return nil
	}
	var pool []Symbol
	for _, c := range p.ShownCategories() {
		if c == Recents {
			continue
		}
		pool = append(pool, SortReadingOrder(p.source.SymbolsFor(c))...)
	}
	return Search(query, pool)
}

type discardPrefs struct{}

func (discardPrefs) GetInt(_ string, def int) int { return def }
func (discardPrefs) SetInt(string, int) error     { return nil }

type noRecents struct{}

func (noRecents) Entries() []string { return nil }
func (noRecents) Add(string) error  { return nil }
