package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/emoji-palette/internal/app"
	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/grid"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth           = "EMOJI_PALETTE_WIDTH"
	envHeight          = "EMOJI_PALETTE_HEIGHT"
	envShowFooter      = "EMOJI_PALETTE_FOOTER"
	envPrefs           = "EMOJI_PALETTE_PREFS"
	envFont            = "EMOJI_PALETTE_FONT"
	envData            = "EMOJI_PALETTE_DATA"
	envMaxRecents      = "EMOJI_PALETTE_MAX_RECENTS"
	envDefaultCategory = "EMOJI_PALETTE_DEFAULT_CATEGORY"
	envCellWidth       = "EMOJI_PALETTE_CELL_WIDTH"
	envTrace           = "EMOJI_PALETTE_TRACE"
	envLogFile         = "EMOJI_PALETTE_LOG_FILE"
	envList            = "EMOJI_PALETTE_LIST"
)

const defaultPrefsFile = "emoji-palette.db"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("emoji-palette", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	prefsPath := fs.String("prefs", envOrDefault(env, envPrefs, DefaultPrefsPath()), "path to the sqlite preference database")
	fontPath := fs.String("font", envOrDefault(env, envFont, ""), "font used to probe which emoji render (empty assumes all do)")
	dataPath := fs.String("data", envOrDefault(env, envData, ""), "YAML emoji catalogue replacing the built-in one")
	maxRecents := fs.Int("max-recents", envOrInt(env, envMaxRecents, emoji.DefaultMaxRecents), "number of recently used emoji to keep")
	defaultCategory := fs.String("default-category", envOrDefault(env, envDefaultCategory, emoji.Describe(emoji.SmileysEmotion).Name), "category shown when nothing was saved")
	cellWidth := fs.Int("cell-width", envOrInt(env, envCellWidth, grid.DefaultCellWidth), "terminal cells reserved per emoji")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	list := fs.Bool("list", envOrBool(env, envList, false), "print the shown categories with symbol and page counts, then exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			PrefsPath:       *prefsPath,
			FontPath:        *fontPath,
			DataPath:        *dataPath,
			MaxRecents:      *maxRecents,
			DefaultCategory: *defaultCategory,
			CellWidth:       *cellWidth,
			List:            *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"prefs":           *prefsPath,
			"font":            *fontPath,
			"data":            *dataPath,
			"maxRecents":      strconv.Itoa(*maxRecents),
			"defaultCategory": *defaultCategory,
			"cellWidth":       strconv.Itoa(*cellWidth),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
			"list":            strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// DefaultPrefsPath places the preference database in the user config
// directory, falling back to the working directory.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return defaultPrefsFile
	}
	return filepath.Join(dir, "emoji-palette", defaultPrefsFile)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations the palette cannot run with.
func Validate(cfg Config) error {
	if cfg.App.MaxRecents < 1 {
		return fmt.Errorf("max-recents must be > 0 (got %d)", cfg.App.MaxRecents)
	}
	if cfg.App.CellWidth < 1 {
		return fmt.Errorf("cell-width must be >= 1 (got %d)", cfg.App.CellWidth)
	}
	c, ok := emoji.ParseCategory(cfg.App.DefaultCategory)
	if !ok {
		return fmt.Errorf("unknown default category %q", cfg.App.DefaultCategory)
	}
	if c == emoji.Recents {
		return fmt.Errorf("default category cannot be %q", cfg.App.DefaultCategory)
	}
	return nil
}
