// Package probe decides whether the host can draw a given emoji sequence.
package probe

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
)

// Static answers every query with the same result. It stands in when no
// font is configured.
type Static bool

// GlyphRenders implements emoji.GlyphProbe.
func (s Static) GlyphRenders(string) bool { return bool(s) }

// Font checks sequences against the character map of a parsed font.
type Font struct {
	font *font.Font

	mu   sync.RWMutex
	seen map[string]bool
}

// LoadFont parses the TrueType or OpenType font at path.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseFont(data)
}

// ParseFont parses raw font bytes.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{font: face.Font, seen: make(map[string]bool)}, nil
}

// GlyphRenders reports whether every visible rune of seq maps to a glyph.
// Joiners and variation selectors are ignored.
func (f *Font) GlyphRenders(seq string) bool {
	f.mu.RLock()
	ok, hit := f.seen[seq]
	f.mu.RUnlock()
	if hit {
		return ok
	}
	ok = f.covers(seq)
	f.mu.Lock()
	f.seen[seq] = ok
	f.mu.Unlock()
	return ok
}

func (f *Font) covers(seq string) bool {
	visible := false
	for _, r := range seq {
		if invisible(r) {
			continue
		}
		if _, ok := f.font.NominalGlyph(r); !ok {
			return false
		}
		visible = true
	}
	return visible
}

func invisible(r rune) bool {
	switch {
	case r == 0x200D: // zero width joiner
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0020 && r <= 0xE007F: // tag sequences
		return true
	}
	return false
}
