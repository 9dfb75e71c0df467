package emoji

import "sync"

// MaxRowsPerPage is the number of grid rows shown on one page.
const MaxRowsPerPage = 3

// Paginator splits category symbol lists into grid-sized pages.
type Paginator struct {
	grids GridFactory

	mu       sync.Mutex
	refWidth int
	ref      Grid
}

// NewPaginator returns a paginator that measures capacity with grids.
func NewPaginator(grids GridFactory) *Paginator {
	return &Paginator{grids: grids}
}

// Capacity returns the number of symbols that fit on one page at the given
// hosting width. The column count comes from an empty reference grid so the
// grid's own fitting rules decide the layout.
func (p *Paginator) Capacity(hostingWidth int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ref == nil || p.refWidth != hostingWidth {
		p.ref = p.grids.NewGrid(hostingWidth, 0, Recents)
		p.refWidth = hostingWidth
	}
	columns := p.ref.OccupiedColumnCount()
	if columns < 1 {
		columns = 1
	}
	return MaxRowsPerPage * columns
}

// PageCountFor returns how many pages of the given capacity hold size symbols.
// An empty category has no pages.
func PageCountFor(size, capacity int) int {
	if size <= 0 {
		return 0
	}
	if capacity < 1 {
		capacity = 1
	}
	return (size-1)/capacity + 1
}

// Paginate sorts symbols into reading order and slices them into pages of at
// most capacity entries. Symbol i of the sorted order lands on page
// i/capacity at slot i%capacity.
func Paginate(symbols []Symbol, capacity int) [][]Symbol {
	if capacity < 1 {
		capacity = 1
	}
	sorted := SortReadingOrder(symbols)
	count := PageCountFor(len(sorted), capacity)
	if count == 0 {
		return nil
	}
	pages := make([][]Symbol, count)
	for i, sym := range sorted {
		page := i / capacity
		if pages[page] == nil {
			pages[page] = make([]Symbol, 0, capacity)
		}
		pages[page] = append(pages[page], sym)
	}
	return pages
}
