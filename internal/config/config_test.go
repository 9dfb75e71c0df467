package config

import (
	"strings"
	"testing"

	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/grid"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.MaxRecents != emoji.DefaultMaxRecents {
		t.Fatalf("expected default max recents, got %d", cfg.App.MaxRecents)
	}
	if cfg.App.CellWidth != grid.DefaultCellWidth {
		t.Fatalf("expected default cell width, got %d", cfg.App.CellWidth)
	}
	if cfg.App.DefaultCategory != "smileys & emotion" {
		t.Fatalf("unexpected default category %q", cfg.App.DefaultCategory)
	}
	if !strings.HasSuffix(cfg.App.PrefsPath, defaultPrefsFile) {
		t.Fatalf("unexpected prefs path %q", cfg.App.PrefsPath)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envWidth + "=50",
		envMaxRecents + "=8",
		envFont + "=/fonts/emoji.ttf",
		envTrace + "=true",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"-width", "72", "-data", "extra.yaml", "-default-category", "flags"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 72 {
		t.Fatalf("flag should win over env, got width %d", cfg.App.Width)
	}
	if cfg.App.MaxRecents != 8 || cfg.App.FontPath != "/fonts/emoji.ttf" || !cfg.Logging.Trace {
		t.Fatalf("env values not applied: %#v", cfg)
	}
	if cfg.App.DataPath != "extra.yaml" || cfg.Flags["data"] != "extra.yaml" {
		t.Fatalf("data flag not recorded: %#v", cfg.Flags)
	}
	if cfg.Flags["width"] != "72" || cfg.Flags["maxRecents"] != "8" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if len(cfg.Args) != 6 {
		t.Fatalf("expected args to be preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresBadEnvValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envCellWidth + "=wide", envShowFooter + "=maybe"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.CellWidth != grid.DefaultCellWidth || cfg.App.ShowFooter {
		t.Fatalf("bad env values should fall back, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatalf("expected height error")
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max recents", func(c *Config) { c.App.MaxRecents = 0 }},
		{"cell width", func(c *Config) { c.App.CellWidth = 0 }},
		{"unknown category", func(c *Config) { c.App.DefaultCategory = "vegetables" }},
		{"recents category", func(c *Config) { c.App.DefaultCategory = "recents" }},
	}
	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestListFlag(t *testing.T) {
	cfg, err := LoadArgs([]string{"-list"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if !cfg.App.List || cfg.Flags["list"] != "true" {
		t.Fatalf("expected list mode, got %#v", cfg.App)
	}
	cfg, err = LoadArgs(nil, []string{envList + "=1"})
	if err != nil || !cfg.App.List {
		t.Fatalf("expected env to enable list mode, err=%v", err)
	}
}
