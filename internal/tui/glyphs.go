package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminal fonts render symbols poorly; ISSUECARD_TUI_GLYPHS=ascii swaps
// card affordances for plain ASCII.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ISSUECARD_TUI_GLYPHS"))) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func glyphCheck() string {
	if glyphs() == glyphSetASCII {
		return "ok"
	}
	return "✓"
}

func glyphCancel() string {
	if glyphs() == glyphSetASCII {
		return "x"
	}
	return "✗"
}

func glyphTrash() string {
	if glyphs() == glyphSetASCII {
		return "del"
	}
	return "✖"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "..."
	}
	return "…"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}
