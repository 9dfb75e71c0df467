package events

import "github.com/atomicstack/emoji-palette/internal/logging"

type SessionTracer struct{}

type sessionReason string

const (
	SessionReasonHidden       sessionReason = "hidden"
	SessionReasonEmptyRecents sessionReason = "empty-recents"
)

var Session = SessionTracer{}

func (SessionTracer) Restore(category string, page int) {
	logging.Trace("session.restore", map[string]interface{}{"category": category, "page": page})
}

func (SessionTracer) Fallback(from, to string, reason sessionReason) {
	logging.Trace("session.fallback", map[string]interface{}{"from": from, "to": to, "reason": string(reason)})
}

func (SessionTracer) Clamp(category string, page, count int) {
	logging.Trace("session.clamp", map[string]interface{}{"category": category, "page": page, "count": count})
}

func (SessionTracer) PersistFailed(key string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.persist.error", map[string]interface{}{"key": key, "error": err.Error()})
}
