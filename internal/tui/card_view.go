package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	titleMaxLines       = 2
	descriptionMaxLines = 2

	addDescriptionLabel = "Click to add description..."
	descriptionHint     = "Press alt+enter to save, esc to cancel"
)

type regionKind int

const (
	regionNone regionKind = iota
	regionDelete
	regionTitle
	regionTitleInput
	regionTitleSave
	regionTitleCancel
	regionDescription
	regionAddDescription
	regionDescriptionInput
	regionDescriptionSave
	regionDescriptionCancel
)

// region is a clickable rectangle in card-content coordinates (inside the
// border and padding). bottom and right are exclusive.
type region struct {
	kind                     regionKind
	top, bottom, left, right int
}

type cardLayout struct {
	lines   []string
	regions []region
}

func (l *cardLayout) add(kind regionKind, lines []string, left, right int) {
	top := len(l.lines)
	l.lines = append(l.lines, lines...)
	if kind != regionNone {
		l.regions = append(l.regions, region{kind: kind, top: top, bottom: len(l.lines), left: left, right: right})
	}
}

func (l *cardLayout) mark(kind regionKind, row, left, right int) {
	l.regions = append(l.regions, region{kind: kind, top: row, bottom: row + 1, left: left, right: right})
}

// Height is the number of terminal rows View produces.
func (c Card) Height() int {
	return len(c.layout().lines) + 2
}

func (c Card) View() string {
	border := colorCardBorder
	switch {
	case c.Editing():
		border = colorAccent
	case c.hovered || c.focused:
		border = colorCardBorderHover
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, cardFrameX-1).
		Width(c.width - 2)
	return frame.Render(strings.Join(c.layout().lines, "\n"))
}

func (c Card) layout() cardLayout {
	w := c.innerWidth()
	var l cardLayout

	c.layoutHeader(&l, w)
	l.add(regionNone, []string{""}, 0, 0)
	c.layoutTitle(&l, w)
	c.layoutDescription(&l, w)

	if strings.TrimSpace(c.props.Footer) != "" {
		l.add(regionNone, []string{"", styleMuted().Render(strings.Repeat(glyphHRule(), w))}, 0, 0)
		footer := strings.Split(strings.TrimRight(c.props.Footer, "\n"), "\n")
		for i := range footer {
			footer[i] = xansi.Truncate(footer[i], w, glyphEllipsis())
		}
		l.add(regionNone, footer, 0, 0)
	}
	return l
}

func (c Card) layoutHeader(l *cardLayout, w int) {
	badge := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorBadgeFg).
		Background(colorBadgeBg).
		Render(c.badge())

	if !c.HasDeleteAction() {
		l.add(regionNone, []string{badge}, 0, 0)
		return
	}

	// The delete button is always present but stays muted until the card is
	// hovered or focused.
	del := styleMuted().Padding(0, 1)
	if c.hovered || c.focused {
		del = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDanger)
	}
	btn := del.Render(glyphTrash())
	btnW := xansi.StringWidth(btn)
	gap := w - xansi.StringWidth(badge) - btnW
	if gap < 1 {
		gap = 1
	}
	row := len(l.lines)
	l.add(regionNone, []string{badge + strings.Repeat(" ", gap) + btn}, 0, 0)
	l.mark(regionDelete, row, w-btnW, w)
}

func (c Card) layoutTitle(l *cardLayout, w int) {
	if !c.editingTitle {
		lines := wrapClamp(c.props.Title, w, titleMaxLines)
		st := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
		for i := range lines {
			lines[i] = st.Render(lines[i])
		}
		l.add(regionTitle, lines, 0, w)
		return
	}

	canSave := strings.TrimSpace(c.titleInput.Value()) != ""
	saveSt := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSave).Background(colorControlBg)
	if !canSave {
		saveSt = styleMuted().Padding(0, 1).Background(colorControlBg)
	}
	cancelSt := lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted).Background(colorControlBg)
	save := saveSt.Render(glyphCheck())
	cancel := cancelSt.Render(glyphCancel())
	saveW := xansi.StringWidth(save)
	cancelW := xansi.StringWidth(cancel)

	inputW := titleInputLineWidth(w)
	view := c.titleInput.View()
	if c.titleSelected {
		view = renderSelected(c.titleInput.Value())
	}
	row := len(l.lines)
	l.add(regionNone, []string{renderInputLine(inputW, view) + " " + save + " " + cancel}, 0, 0)
	l.mark(regionTitleInput, row, 0, inputW)
	l.mark(regionTitleSave, row, inputW+1, inputW+1+saveW)
	l.mark(regionTitleCancel, row, inputW+2+saveW, inputW+2+saveW+cancelW)
}

func (c Card) layoutDescription(l *cardLayout, w int) {
	switch {
	case c.editingDescription:
		view := c.descInput.View()
		if c.descSelected {
			view = renderSelectedBlock(c.descInput.Value(), w)
		}
		l.add(regionDescriptionInput, strings.Split(view, "\n"), 0, w)

		btn := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg)
		save := btn.Foreground(colorSave).Render(glyphCheck() + " Save")
		cancel := btn.Foreground(colorMuted).Render(glyphCancel() + " Cancel")
		saveW := xansi.StringWidth(save)
		cancelW := xansi.StringWidth(cancel)
		pad := w - saveW - cancelW - 1
		if pad < 0 {
			pad = 0
		}
		row := len(l.lines)
		l.add(regionNone, []string{strings.Repeat(" ", pad) + save + " " + cancel}, 0, 0)
		l.mark(regionDescriptionSave, row, pad, pad+saveW)
		l.mark(regionDescriptionCancel, row, pad+saveW+1, pad+saveW+1+cancelW)

		l.add(regionNone, []string{styleMuted().Render(xansi.Truncate(descriptionHint, w, glyphEllipsis()))}, 0, 0)

	case c.props.Description != "":
		l.add(regionDescription, descriptionPreview(c.props.Description, w), 0, w)

	default:
		label := styleMuted().Italic(true).Render(addDescriptionLabel)
		l.add(regionAddDescription, []string{label}, 0, xansi.StringWidth(addDescriptionLabel))
	}
}

// titleInputLineWidth is the room left for the title input once the check and
// cancel buttons (one column of padding each side) and their gaps are placed.
func titleInputLineWidth(w int) int {
	buttons := xansi.StringWidth(glyphCheck()) + xansi.StringWidth(glyphCancel()) + 4
	return w - buttons - 2
}

// descriptionPreview renders the description as markdown and keeps the first
// descriptionMaxLines visible lines.
func descriptionPreview(desc string, w int) []string {
	var lines []string
	for _, line := range strings.Split(renderMarkdownCompact(desc, w), "\n") {
		if strings.TrimSpace(xansi.Strip(line)) == "" {
			continue
		}
		lines = append(lines, xansi.Truncate(line, w, ""))
	}
	if len(lines) == 0 {
		return wrapClamp(desc, w, descriptionMaxLines)
	}
	st := lipgloss.NewStyle().Foreground(colorMuted)
	if len(lines) > descriptionMaxLines {
		lines = lines[:descriptionMaxLines]
		last := xansi.Truncate(lines[descriptionMaxLines-1], w-xansi.StringWidth(glyphEllipsis()), "")
		lines[descriptionMaxLines-1] = last + st.Render(glyphEllipsis())
	}
	return lines
}

// wrapClamp wraps s to w columns and keeps at most n lines, marking any cut
// with an ellipsis.
func wrapClamp(s string, w, n int) []string {
	lines := strings.Split(xansi.Wrap(strings.TrimSpace(s), w, ""), "\n")
	if len(lines) <= n {
		return lines
	}
	ell := glyphEllipsis()
	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	lines[n-1] = xansi.Truncate(last, w-xansi.StringWidth(ell), "") + ell
	return lines
}

// renderSelectedBlock is renderSelected for multi-line buffers.
func renderSelectedBlock(text string, w int) string {
	lines := strings.Split(xansi.Wrap(text, w, ""), "\n")
	for i := range lines {
		lines[i] = renderSelected(lines[i])
	}
	return strings.Join(lines, "\n")
}
