// Package prefs persists small key/value preferences between runs.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/emoji-palette/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS prefs (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLite stores preferences in a single-table SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// Open creates or opens the preference database at path, creating parent
// directories as needed.
func Open(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating prefs directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening prefs database: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating prefs schema: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// Path returns the database location.
func (s *SQLite) Path() string { return s.path }

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetString returns the stored value for key.
func (s *SQLite) GetString(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading pref %q: %w", key, err)
	}
	return value, true, nil
}

// SetString stores value under key.
func (s *SQLite) SetString(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing pref %q: %w", key, err)
	}
	return nil
}

// GetInt returns the integer stored under key, or def when the key is
// missing or unreadable.
func (s *SQLite) GetInt(key string, def int) int {
	value, ok, err := s.GetString(key)
	if err != nil {
		logging.Error(err)
		return def
	}
	if !ok {
		return def
	}
	return parseInt(key, value, def)
}

// SetInt stores value under key.
func (s *SQLite) SetInt(key string, value int) error {
	return s.SetString(key, strconv.Itoa(value))
}

// Memory is an in-process store used when no database is configured.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) GetString(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) SetString(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) GetInt(key string, def int) int {
	value, ok, _ := m.GetString(key)
	if !ok {
		return def
	}
	return parseInt(key, value, def)
}

func (m *Memory) SetInt(key string, value int) error {
	return m.SetString(key, strconv.Itoa(value))
}

func parseInt(key, value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		logging.Warnf("pref %q holds non-integer %q", key, value)
		return def
	}
	return n
}
