// Package recents keeps the most recently picked emoji, newest first.
package recents

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/atomicstack/emoji-palette/internal/logging"
)

// PrefKey is the preference key the list is persisted under.
const PrefKey = "emoji_recent_keys"

// StringStore is the subset of a preference store recents needs.
type StringStore interface {
	GetString(key string) (string, bool, error)
	SetString(key, value string) error
}

// Store is a bounded most-recently-used list of emoji texts.
type Store struct {
	prefs StringStore
	limit int

	mu      sync.Mutex
	entries []string
}

// Load reads the persisted list. Unreadable data yields an empty list.
func Load(prefs StringStore, limit int) *Store {
	if limit < 1 {
		limit = 1
	}
	s := &Store{prefs: prefs, limit: limit}
	if prefs == nil {
		return s
	}
	raw, ok, err := prefs.GetString(PrefKey)
	if err != nil {
		logging.Error(err)
		return s
	}
	if !ok || raw == "" {
		return s
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logging.Warnf("discarding unreadable recents: %v", err)
		return s
	}
	s.entries = dedupe(entries, limit)
	return s
}

// Entries returns a copy of the list, newest first.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Add moves text to the front of the list and persists it.
func (s *Store) Add(text string) error {
	if text == "" {
		return nil
	}
	s.mu.Lock()
	s.entries = dedupe(append([]string{text}, s.entries...), s.limit)
	snapshot := append([]string(nil), s.entries...)
	s.mu.Unlock()
	return s.save(snapshot)
}

// Clear empties the list.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
	return s.save([]string{})
}

func (s *Store) save(entries []string) error {
	if s.prefs == nil {
		return nil
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding recents: %w", err)
	}
	return s.prefs.SetString(PrefKey, string(data))
}

func dedupe(entries []string, limit int) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, min(len(entries), limit))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}
