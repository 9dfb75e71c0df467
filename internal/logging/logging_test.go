package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "palette.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestWarnfWritesPrefixedLine(t *testing.T) {
	path := useTempLog(t)
	Warnf("invalid category id: %d", 42)
	out := readLog(t, path)
	if !strings.Contains(out, "warn: invalid category id: 42") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file for nil error, stat err=%v", err)
	}
	Error(errors.New("boom"))
	if out := readLog(t, path); !strings.Contains(out, "error: boom") {
		t.Fatalf("expected error line, got %q", out)
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := useTempLog(t)
	Trace("palette.fill", map[string]interface{}{"pages": 3})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected trace to be suppressed while disabled")
	}
	SetTraceEnabled(true)
	if !TraceEnabled() {
		t.Fatalf("expected trace enabled")
	}
	Trace("palette.fill", map[string]interface{}{"pages": 3})
	out := readLog(t, path)
	if !strings.Contains(out, `"event":"palette.fill"`) || !strings.Contains(out, `"pages":3`) {
		t.Fatalf("unexpected trace output %q", out)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default log path, got %q", Path())
	}
}
