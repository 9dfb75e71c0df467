package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/grid"
	"github.com/atomicstack/emoji-palette/internal/logging"
	"github.com/atomicstack/emoji-palette/internal/prefs"
	"github.com/atomicstack/emoji-palette/internal/probe"
	"github.com/atomicstack/emoji-palette/internal/recents"
	"github.com/atomicstack/emoji-palette/internal/symbols"
	"github.com/atomicstack/emoji-palette/internal/ui"
)

// fallbackWidth is used when neither a flag nor the terminal gives a width.
const fallbackWidth = 80

// Config describes user-provided application options.
type Config struct {
	Width           int
	Height          int
	ShowFooter      bool
	PrefsPath       string
	FontPath        string
	DataPath        string
	MaxRecents      int
	DefaultCategory string
	CellWidth       int
	List            bool
}

type store interface {
	emoji.Prefs
	recents.StringStore
}

// Palette bundles a ready palette with the resources backing it.
type Palette struct {
	*emoji.Palette
	Recents *recents.Store
	Symbols *symbols.Set

	closer func() error
}

// Close releases the preference store.
func (p *Palette) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// Build wires the palette to its stores and initializes it for width.
func Build(cfg Config, width int) (*Palette, error) {
	var st store
	closer := func() error { return nil }
	if cfg.PrefsPath == "" {
		st = prefs.NewMemory()
	} else {
		db, err := prefs.Open(cfg.PrefsPath)
		if err != nil {
			return nil, fmt.Errorf("open prefs: %w", err)
		}
		st = db
		closer = db.Close
	}

	set, err := symbols.LoadFile(cfg.DataPath)
	if err != nil {
		closer()
		return nil, fmt.Errorf("load symbols: %w", err)
	}
	for _, c := range missingCategories(set) {
		logging.Warnf("symbol data has no entries for %s", c)
	}

	var glyphs emoji.GlyphProbe = probe.Static(true)
	if cfg.FontPath != "" {
		f, err := probe.LoadFont(cfg.FontPath)
		if err != nil {
			closer()
			return nil, fmt.Errorf("load font: %w", err)
		}
		glyphs = f
	}

	maxRecents := cfg.MaxRecents
	if maxRecents <= 0 {
		maxRecents = emoji.DefaultMaxRecents
	}
	recent := recents.Load(st, maxRecents)
	def, _ := emoji.ParseCategory(cfg.DefaultCategory)

	p := emoji.New(emoji.Options{
		Source:          set,
		Grids:           grid.Factory{CellWidth: cfg.CellWidth, Recents: recent},
		Prefs:           st,
		Probe:           glyphs,
		Recents:         recent,
		Width:           width,
		MaxRecents:      maxRecents,
		DefaultCategory: def,
	})
	p.Initialize()
	return &Palette{Palette: p, Recents: recent, Symbols: set, closer: closer}, nil
}

// Run bootstraps and executes the Bubble Tea program. It returns the picked
// symbol, or an empty string when the user quit without picking.
func Run(cfg Config) (string, error) {
	width := HostingWidth(cfg.Width)
	palette, err := Build(cfg, width)
	if err != nil {
		return "", err
	}
	defer palette.Close()

	model := ui.NewModel(palette.Palette, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		CellWidth:  cfg.CellWidth,
	})
	program := tea.NewProgram(model)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Selected(), nil
	}
	return "", nil
}

// HostingWidth resolves the width the palette lays pages out to. A positive
// requested width wins over the terminal size.
func HostingWidth(requested int) int {
	if requested > 0 {
		return requested
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

// missingCategories lists the data-backed categories absent from set.
func missingCategories(set *symbols.Set) []emoji.Category {
	present := make(map[emoji.Category]bool)
	for _, c := range set.Categories() {
		present[c] = true
	}
	var out []emoji.Category
	for _, c := range emoji.Categories() {
		if c != emoji.Recents && !present[c] {
			out = append(out, c)
		}
	}
	return out
}
