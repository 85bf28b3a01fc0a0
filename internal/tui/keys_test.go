package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDecodeUnknownCSIString(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "?CSI[49 51 59 57 117]?", want: "13;9u", wantOK: true},
		{raw: "?CSI[50 55 59 51 59 49 51 126]?", want: "27;3;13~", wantOK: true},
		{raw: "?CSI[]?", wantOK: false},
		{raw: "?CSI[300]?", wantOK: false},
		{raw: "alt+enter", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := decodeUnknownCSIString(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("decodeUnknownCSIString(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsMetaEnterSequence(t *testing.T) {
	tests := []struct {
		seq  string
		want bool
	}{
		{seq: "13;9u", want: true},    // kitty super (Cmd)
		{seq: "13;3u", want: true},    // kitty alt
		{seq: "13;33u", want: true},   // kitty meta
		{seq: "13;9:1u", want: true},  // kitty with event type
		{seq: "13;5u", want: false},   // ctrl only
		{seq: "13;1u", want: false},   // no modifiers
		{seq: "27;9;13~", want: true}, // xterm modifyOtherKeys meta
		{seq: "27;3;13~", want: true},
		{seq: "27;2;13~", want: false}, // shift
		{seq: "27;9;9~", want: false},  // tab, not enter
		{seq: "1;9A", want: false},
		{seq: "", want: false},
	}
	for _, tt := range tests {
		if got := isMetaEnterSequence(tt.seq); got != tt.want {
			t.Fatalf("isMetaEnterSequence(%q) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

func TestSaveDescriptionBindings(t *testing.T) {
	k := DefaultCardKeyMap()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter, Alt: true},
		{Type: tea.KeyCtrlS},
	} {
		if !key.Matches(msg, k.SaveDescription) {
			t.Fatalf("expected %q to save the description", msg.String())
		}
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.SaveDescription) {
		t.Fatalf("plain enter must not save the description")
	}
}

func TestThemeFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantDark bool
		wantOK   bool
	}{
		{name: "explicit light", env: map[string]string{"ISSUECARD_TUI_THEME": "light"}, wantDark: false, wantOK: true},
		{name: "explicit dark wins over colorfgbg", env: map[string]string{"ISSUECARD_TUI_THEME": "DARK", "COLORFGBG": "0;15"}, wantDark: true, wantOK: true},
		{name: "darkbg flag", env: map[string]string{"ISSUECARD_TUI_DARKBG": "false"}, wantDark: false, wantOK: true},
		{name: "auto falls through", env: map[string]string{"ISSUECARD_TUI_THEME": "auto", "COLORFGBG": "15;0"}, wantDark: true, wantOK: true},
		{name: "light colorfgbg", env: map[string]string{"COLORFGBG": "0;default;15"}, wantDark: false, wantOK: true},
		{name: "nothing set", env: map[string]string{}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dark, ok := themeFromEnv(func(k string) string { return tt.env[k] })
			if ok != tt.wantOK || (ok && dark != tt.wantDark) {
				t.Fatalf("themeFromEnv = (%v, %v), want (%v, %v)", dark, ok, tt.wantDark, tt.wantOK)
			}
		})
	}
}

func TestGlyphSets(t *testing.T) {
	setGlyphs(glyphSetASCII)
	defer setGlyphs(glyphSetUnicode)

	if glyphCheck() != "ok" || glyphTrash() != "del" || glyphEllipsis() != "..." {
		t.Fatalf("unexpected ascii glyphs")
	}
	c := NewCard(CardProps{Title: "Fix bug", OnDelete: func() {}})
	if !hasRegion(c, regionDelete) {
		t.Fatalf("expected delete region with ascii glyphs")
	}
}
