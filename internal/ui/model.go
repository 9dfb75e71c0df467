package ui

import (
	"reflect"

	"charm.land/bubbles/v2/paginator"
	tea "charm.land/bubbletea/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/grid"
	"github.com/atomicstack/emoji-palette/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the display settings for a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	CellWidth  int
}

// Model implements the Bubble Tea model for the emoji palette.
type Model struct {
	palette *emoji.Palette

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	cellWidth   int

	cursor   int
	selected string
	errMsg   string

	searching bool
	query     []rune
	results   []emoji.Symbol

	pager    paginator.Model
	title    cases.Caser
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI around an initialized palette.
func NewModel(palette *emoji.Palette, opts Options) *Model {
	cellWidth := opts.CellWidth
	if cellWidth < 1 {
		cellWidth = grid.DefaultCellWidth
	}
	pager := paginator.New()
	pager.Type = paginator.Dots
	m := &Model{
		palette:    palette,
		showFooter: opts.ShowFooter,
		cellWidth:  cellWidth,
		pager:      pager,
		title:      cases.Title(language.English),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		palette.SetHostingWidth(opts.Width)
	} else {
		m.width = palette.HostingWidth()
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.syncPager()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Selected returns the text of the picked symbol, if any.
func (m *Model) Selected() string {
	return m.selected
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
