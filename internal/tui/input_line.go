package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine pads a single-line input view to w columns on the input
// background. Newlines are flattened so typing never looks like wrapping.
func renderInputLine(w int, inputView string) string {
	if w < 4 {
		w = 4
	}
	inputView = strings.ReplaceAll(inputView, "\r", " ")
	inputView = strings.ReplaceAll(inputView, "\n", " ")

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Reset styling after the cut so the background can't bleed.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

// renderSelected draws text as a selected block, the card's stand-in for a
// focused field with all of its text selected.
func renderSelected(text string) string {
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(colorSelectionFg).
		Background(colorSelectionBg).
		Render(text)
}
