package emoji

import (
	"fmt"
	"sync"

	"github.com/atomicstack/emoji-palette/internal/logging"
	"github.com/atomicstack/emoji-palette/internal/logging/events"
)

// Preference keys for the persisted session.
const (
	PrefLastCategory = "last_shown_emoji_category_id"
	PrefLastPage     = "last_shown_emoji_category_page_id"
)

// Session tracks the category and page the user is looking at.
type Session struct {
	prefs Prefs

	mu       sync.Mutex
	category Category
	page     int
}

// NewSession returns a session persisted through prefs.
func NewSession(prefs Prefs) *Session {
	return &Session{prefs: prefs, category: SmileysEmotion}
}

// Initialize restores the persisted category and page and repairs them
// against the live category set. A hidden category, or recents while the
// recents page is empty, falls back to def. A page outside the category's
// page range resets to zero.
func (s *Session) Initialize(shown []Category, def Category, recentsEmpty func() bool, pageCount func(Category) int) {
	category := Category(s.prefs.GetInt(PrefLastCategory, int(def)))
	page := s.prefs.GetInt(PrefLastPage, 0)

	switch {
	case !containsCategory(shown, category):
		events.Session.Fallback(category.String(), def.String(), events.SessionReasonHidden)
		category = def
	case category == Recents && recentsEmpty != nil && recentsEmpty():
		events.Session.Fallback(category.String(), def.String(), events.SessionReasonEmptyRecents)
		category = def
	}

	count := 0
	if pageCount != nil {
		count = pageCount(category)
	}
	if page < 0 || page >= count {
		if page != 0 {
			events.Session.Clamp(category.String(), page, count)
		}
		page = 0
	}

	s.mu.Lock()
	s.category = category
	s.page = page
	s.mu.Unlock()
	events.Session.Restore(category.String(), page)
}

// Category returns the current category.
func (s *Session) Category() Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Page returns the current page within the current category.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// SetCategory updates and persists the current category.
func (s *Session) SetCategory(c Category) {
	s.mu.Lock()
	s.category = c
	s.mu.Unlock()
	s.persist(PrefLastCategory, int(c))
}

// SetPage updates and persists the current page.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	s.persist(PrefLastPage, page)
}

// persist writes through to prefs. Failures leave the in-memory value in
// charge for the rest of the run.
func (s *Session) persist(key string, value int) {
	if err := s.prefs.SetInt(key, value); err != nil {
		logging.Error(fmt.Errorf("persist %s: %w", key, err))
		events.Session.PersistFailed(key, err)
	}
}

func containsCategory(list []Category, c Category) bool {
	for _, candidate := range list {
		if candidate == c {
			return true
		}
	}
	return false
}
