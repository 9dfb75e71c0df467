// Package emoji pages emoji categories into grids that fit the hosting width.
//
// The Palette is the entry point. It decides which categories are shown,
// answers page-count and page requests through a PageCache, and keeps the
// user's current category and page in a Session persisted through Prefs.
//
// Pages are derived data. A category's symbols are sorted into reading order
// (top, then left, then code) and cut into pages of MaxRowsPerPage rows. The
// column count comes from the grid primitive itself. The first request for
// any page of a category builds every page of that category under the cache
// lock. Changing the hosting width drops all pages and page counts.
//
// The grid primitive, symbol source, preference store, glyph probe and
// recents collection are collaborators behind small interfaces; concrete
// implementations live in internal/grid, internal/symbols, internal/prefs,
// internal/probe and internal/recents.
package emoji
