package events

import "github.com/atomicstack/emoji-palette/internal/logging"

type PaletteTracer struct{}

var Palette = PaletteTracer{}

func (PaletteTracer) Fill(category string, pages, capacity, symbols int) {
	logging.Trace("palette.fill", map[string]interface{}{
		"category": category,
		"pages":    pages,
		"capacity": capacity,
		"symbols":  symbols,
	})
}

func (PaletteTracer) Recents(size, capacity int) {
	logging.Trace("palette.recents", map[string]interface{}{"size": size, "capacity": capacity})
}

func (PaletteTracer) Invalidate(dropped int) {
	logging.Trace("palette.invalidate", map[string]interface{}{"dropped": dropped})
}

func (PaletteTracer) Width(previous, current int) {
	logging.Trace("palette.width", map[string]interface{}{"previous": previous, "current": current})
}

func (PaletteTracer) Shown(categories []string) {
	logging.Trace("palette.shown", map[string]interface{}{"categories": categories})
}

func (PaletteTracer) Pick(text string) {
	logging.Trace("palette.pick", map[string]interface{}{"text": text})
}
