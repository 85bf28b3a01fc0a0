package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Cards must stay readable on light and dark terminals, so colors are adaptive
// and faint styling is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")
	colorAccent    lipgloss.TerminalColor = ac("27", "62")

	// Card borders: soft when idle, strong on hover/focus.
	colorCardBorder      lipgloss.TerminalColor = ac("250", "243")
	colorCardBorderHover lipgloss.TerminalColor = ac("244", "248")

	colorBadgeFg lipgloss.TerminalColor = ac("240", "245")
	colorBadgeBg lipgloss.TerminalColor = ac("255", "236")

	colorSelectionBg lipgloss.TerminalColor = ac("153", "24")
	colorSelectionFg lipgloss.TerminalColor = ac("235", "255")

	colorSave   lipgloss.TerminalColor = ac("28", "77")   // green
	colorDanger lipgloss.TerminalColor = ac("160", "203") // red
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets the Lip Gloss color profile for the
// interactive card. Only NO_COLOR is honored from the CLICOLOR family; the rest
// follows terminal capabilities, trusting TERM/COLORTERM when they claim more.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection for adaptive colors.
//
// Priority:
// 1) ISSUECARD_TUI_THEME=light|dark|auto
// 2) ISSUECARD_TUI_DARKBG=true|false
// 3) COLORFGBG ("fg;bg", last segment is the background)
func applyThemePreference() {
	if dark, ok := themeFromEnv(os.Getenv); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

func themeFromEnv(getenv func(string) string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(getenv("ISSUECARD_TUI_THEME"))) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	if v := strings.TrimSpace(getenv("ISSUECARD_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}
	if v := strings.TrimSpace(getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7, true
		}
	}
	return false, false
}
