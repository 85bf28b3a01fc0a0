package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (c Card) Init() tea.Cmd { return nil }

func (c Card) Update(msg tea.Msg) (Card, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.updateKey(msg)
	case tea.MouseMsg:
		return c.updateMouse(msg)
	}

	// Some terminals send Cmd/Meta+Enter as a CSI sequence Bubble Tea does
	// not map; it arrives as an "unknown CSI" message.
	if c.active == fieldDescription {
		if s, ok := msg.(fmt.Stringer); ok {
			if seq, ok := decodeUnknownCSIString(s.String()); ok && isMetaEnterSequence(seq) {
				c.SaveDescription()
				return c, nil
			}
		}
	}

	// Cursor blink and other input plumbing.
	var cmds []tea.Cmd
	if c.editingTitle {
		var cmd tea.Cmd
		c.titleInput, cmd = c.titleInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if c.editingDescription {
		var cmd tea.Cmd
		c.descInput, cmd = c.descInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return c, tea.Batch(cmds...)
}

func (c Card) updateKey(msg tea.KeyMsg) (Card, tea.Cmd) {
	switch c.active {
	case fieldTitle:
		return c.updateTitleKey(msg)
	case fieldDescription:
		return c.updateDescriptionKey(msg)
	}

	if !c.focused {
		return c, nil
	}
	switch {
	case key.Matches(msg, c.keys.EditTitle):
		return c, c.StartTitleEdit()
	case key.Matches(msg, c.keys.EditDescription):
		return c, c.StartDescriptionEdit()
	case key.Matches(msg, c.keys.Delete):
		c.Delete()
	}
	return c, nil
}

func (c Card) updateTitleKey(msg tea.KeyMsg) (Card, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.SaveTitle):
		c.SaveTitle()
		return c, nil
	case key.Matches(msg, c.keys.Cancel):
		c.CancelTitle()
		return c, nil
	}

	if c.titleSelected {
		c.titleSelected = false
		switch selectionEffect(msg) {
		case selectionReplace:
			c.titleInput.SetValue("")
		case selectionClear:
			c.titleInput.SetValue("")
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.titleInput, cmd = c.titleInput.Update(msg)
	return c, cmd
}

func (c Card) updateDescriptionKey(msg tea.KeyMsg) (Card, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.SaveDescription):
		c.SaveDescription()
		return c, nil
	case key.Matches(msg, c.keys.Cancel):
		c.CancelDescription()
		return c, nil
	}

	if c.descSelected {
		c.descSelected = false
		switch selectionEffect(msg) {
		case selectionReplace:
			c.descInput.SetValue("")
		case selectionClear:
			c.descInput.SetValue("")
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.descInput, cmd = c.descInput.Update(msg)
	return c, cmd
}

type selectionAction int

const (
	selectionKeep selectionAction = iota
	selectionReplace
	selectionClear
)

// selectionEffect decides what a key does to a fully selected buffer: typed
// text replaces it, backspace/delete clears it, anything else just drops the
// selection.
func selectionEffect(msg tea.KeyMsg) selectionAction {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return selectionKeep
		}
		return selectionReplace
	case tea.KeyBackspace, tea.KeyDelete:
		return selectionClear
	default:
		return selectionKeep
	}
}

func (c Card) updateMouse(msg tea.MouseMsg) (Card, tea.Cmd) {
	inside := c.contains(msg.X, msg.Y)
	if msg.Action == tea.MouseActionMotion {
		c.hovered = inside
		return c, nil
	}
	if !inside || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return c, nil
	}

	switch c.hitTest(msg.X, msg.Y) {
	case regionDelete:
		c.Delete()
	case regionTitle:
		return c, c.StartTitleEdit()
	case regionTitleInput:
		c.setActive(fieldTitle)
	case regionTitleSave:
		c.SaveTitle()
	case regionTitleCancel:
		c.CancelTitle()
	case regionDescription, regionAddDescription:
		return c, c.StartDescriptionEdit()
	case regionDescriptionInput:
		c.setActive(fieldDescription)
	case regionDescriptionSave:
		c.SaveDescription()
	case regionDescriptionCancel:
		c.CancelDescription()
	}
	return c, nil
}

func (c Card) contains(x, y int) bool {
	return x >= c.originX && x < c.originX+c.width &&
		y >= c.originY && y < c.originY+c.Height()
}

func (c Card) hitTest(x, y int) regionKind {
	ix := x - c.originX - cardFrameX
	iy := y - c.originY - cardFrameY
	for _, r := range c.layout().regions {
		if iy >= r.top && iy < r.bottom && ix >= r.left && ix < r.right {
			return r.kind
		}
	}
	return regionNone
}
