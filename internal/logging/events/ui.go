package events

import "github.com/atomicstack/emoji-palette/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Category(category string, tab int) {
	logging.Trace("ui.category", map[string]interface{}{"category": category, "tab": tab})
}

func (UITracer) Page(category string, page, count int) {
	logging.Trace("ui.page", map[string]interface{}{"category": category, "page": page, "count": count})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Select(text string) {
	logging.Trace("ui.select", map[string]interface{}{"text": text})
}
