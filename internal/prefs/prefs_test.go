package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/emoji-palette/internal/logging"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "prefs-test")
	if err != nil {
		os.Exit(1)
	}
	logging.Configure(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
	if st.Path() != path {
		t.Fatalf("unexpected path %q", st.Path())
	}
}

func TestIntRoundTripAndUpsert(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	if got := st.GetInt("page", 7); got != 7 {
		t.Fatalf("expected default for missing key, got %d", got)
	}
	if err := st.SetInt("page", 2); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if err := st.SetInt("page", 3); err != nil {
		t.Fatalf("SetInt overwrite: %v", err)
	}
	if got := st.GetInt("page", 7); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if err := st.SetString("page", "garbage"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if got := st.GetInt("page", 7); got != 7 {
		t.Fatalf("expected default for non-integer value, got %d", got)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := st.SetString("recent", `["😀"]`); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()
	value, ok, err := st.GetString("recent")
	if err != nil || !ok || value != `["😀"]` {
		t.Fatalf("unexpected value %q ok=%v err=%v", value, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.GetString("x"); ok {
		t.Fatalf("expected missing key")
	}
	if err := m.SetInt("x", 4); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if got := m.GetInt("x", 0); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	_ = m.SetString("x", "nope")
	if got := m.GetInt("x", 9); got != 9 {
		t.Fatalf("expected default, got %d", got)
	}
}
