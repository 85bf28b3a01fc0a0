package tui

import (
	"strings"

	"issuecard/internal/logging"
	"issuecard/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultCardWidth = 56
	minCardWidth     = 24

	// Rounded border plus one column of padding on each side.
	cardFrameX = 2
	cardFrameY = 1
)

// CardProps is the read-only snapshot a card renders. The caller owns the
// issue; the card only proposes edits through OnEdit.
type CardProps struct {
	Index       int
	Title       string
	Description string
	// Footer is pre-rendered content shown under a rule. Empty means none.
	Footer      string
	BadgePrefix string

	// OnDelete is called directly when delete is activated. Nil hides the
	// delete button.
	OnDelete func()
	// OnEdit receives the proposed title and description. Nil makes saving a
	// no-op.
	OnEdit func(title, description string)
}

// PropsFromIssue builds props for it without callbacks.
func PropsFromIssue(it model.Issue) CardProps {
	return CardProps{
		Index:       it.Index,
		Title:       it.Title,
		Description: it.Description,
		Footer:      it.Footer,
		BadgePrefix: it.BadgePrefix,
	}
}

type cardField int

const (
	fieldNone cardField = iota
	fieldTitle
	fieldDescription
)

// Card is an editable issue card. Title and description each toggle between
// viewing and editing independently; nothing stops both from being in edit
// mode at once. Keystrokes go to whichever field entered edit mode last.
type Card struct {
	props CardProps
	keys  CardKeyMap

	width   int
	originX int
	originY int
	focused bool
	hovered bool

	editingTitle       bool
	editingDescription bool
	active             cardField

	// The inputs double as the edit buffers.
	titleInput textinput.Model
	descInput  textarea.Model

	// Whole-buffer selection applied when a field enters edit mode.
	titleSelected bool
	descSelected  bool
}

func NewCard(props CardProps) Card {
	c := Card{
		props: props,
		keys:  DefaultCardKeyMap(),
		width: defaultCardWidth,
	}

	c.titleInput = textinput.New()
	c.titleInput.Prompt = ""
	c.titleInput.Placeholder = "Issue title..."
	c.titleInput.CharLimit = 0
	c.titleInput.SetValue(props.Title)

	c.descInput = textarea.New()
	c.descInput.Prompt = ""
	c.descInput.Placeholder = "Issue description..."
	c.descInput.CharLimit = 0
	c.descInput.ShowLineNumbers = false
	c.descInput.SetHeight(4)
	c.descInput.SetValue(props.Description)

	c.resizeInputs()
	return c
}

// SetProps replaces the snapshot used for rendering and cancel. Edit buffers
// are left alone.
func (c *Card) SetProps(props CardProps) {
	c.props = props
}

func (c Card) Props() CardProps { return c.props }

func (c *Card) SetWidth(w int) {
	if w < minCardWidth {
		w = minCardWidth
	}
	c.width = w
	c.resizeInputs()
}

func (c Card) Width() int { return c.width }

// SetOrigin records where the card's top-left corner is drawn so mouse
// coordinates can be mapped onto it.
func (c *Card) SetOrigin(x, y int) {
	c.originX = x
	c.originY = y
}

func (c *Card) Focus()       { c.focused = true }
func (c *Card) Blur()        { c.focused = false }
func (c Card) Focused() bool { return c.focused }
func (c Card) Hovered() bool { return c.hovered }

func (c Card) EditingTitle() bool       { return c.editingTitle }
func (c Card) EditingDescription() bool { return c.editingDescription }
func (c Card) Editing() bool            { return c.editingTitle || c.editingDescription }

func (c Card) TitleBuffer() string       { return c.titleInput.Value() }
func (c Card) DescriptionBuffer() string { return c.descInput.Value() }

func (c Card) HasDeleteAction() bool { return c.props.OnDelete != nil }

// KeyMap returns the bindings that apply in the card's current mode.
func (c Card) KeyMap() CardKeyMap {
	k := c.keys
	viewing := c.active == fieldNone
	k.EditTitle.SetEnabled(viewing)
	k.EditDescription.SetEnabled(viewing)
	k.Delete.SetEnabled(viewing && c.HasDeleteAction())
	k.SaveTitle.SetEnabled(c.active == fieldTitle)
	k.SaveDescription.SetEnabled(c.active == fieldDescription)
	k.Cancel.SetEnabled(!viewing)
	return k
}

func (c Card) badge() string {
	return model.Badge(c.props.BadgePrefix, c.props.Index)
}

func (c Card) innerWidth() int {
	return c.width - 2*cardFrameX
}

func (c *Card) resizeInputs() {
	// Input line padding plus the cursor cell.
	c.titleInput.Width = max(1, titleInputLineWidth(c.innerWidth())-3)
	// Leave a column for the cursor at end of line.
	c.descInput.SetWidth(c.innerWidth() - 1)
}

// StartTitleEdit switches the title to edit mode with its whole buffer
// selected.
func (c *Card) StartTitleEdit() tea.Cmd {
	c.editingTitle = true
	c.titleSelected = c.titleInput.Value() != ""
	c.titleInput.CursorEnd()
	c.setActive(fieldTitle)
	logging.L().Debug().Str("badge", c.badge()).Msg("title edit started")
	return c.titleInput.Focus()
}

// SaveTitle commits the trimmed title together with the current description
// buffer. A title that trims to empty, or a missing OnEdit, leaves edit mode
// open and reports false.
func (c *Card) SaveTitle() bool {
	title := strings.TrimSpace(c.titleInput.Value())
	if c.props.OnEdit == nil || title == "" {
		return false
	}
	c.props.OnEdit(title, c.descInput.Value())
	logging.L().Debug().Str("badge", c.badge()).Msg("title saved")
	c.exitTitleEdit()
	return true
}

// CancelTitle restores the title buffer from props and leaves edit mode.
func (c *Card) CancelTitle() {
	c.titleInput.SetValue(c.props.Title)
	c.exitTitleEdit()
}

func (c *Card) exitTitleEdit() {
	c.editingTitle = false
	c.titleSelected = false
	c.titleInput.Blur()
	if c.active == fieldTitle {
		c.setActive(c.fallbackField())
	}
}

// StartDescriptionEdit switches the description to edit mode with its whole
// buffer selected. It is also how a missing description gets added.
func (c *Card) StartDescriptionEdit() tea.Cmd {
	c.editingDescription = true
	c.descSelected = c.descInput.Value() != ""
	// Re-inserting the value parks the cursor at the end of the last line.
	c.descInput.SetValue(c.descInput.Value())
	c.setActive(fieldDescription)
	logging.L().Debug().Str("badge", c.badge()).Msg("description edit started")
	return c.descInput.Focus()
}

// SaveDescription commits the current title buffer and the trimmed
// description. An empty description is a valid save.
func (c *Card) SaveDescription() bool {
	if c.props.OnEdit == nil {
		return false
	}
	c.props.OnEdit(c.titleInput.Value(), strings.TrimSpace(c.descInput.Value()))
	logging.L().Debug().Str("badge", c.badge()).Msg("description saved")
	c.exitDescriptionEdit()
	return true
}

// CancelDescription restores the description buffer from props (or "") and
// leaves edit mode.
func (c *Card) CancelDescription() {
	c.descInput.SetValue(c.props.Description)
	c.exitDescriptionEdit()
}

func (c *Card) exitDescriptionEdit() {
	c.editingDescription = false
	c.descSelected = false
	c.descInput.Blur()
	if c.active == fieldDescription {
		c.setActive(c.fallbackField())
	}
}

// Delete calls OnDelete with no confirmation step.
func (c *Card) Delete() bool {
	if c.props.OnDelete == nil {
		return false
	}
	logging.L().Debug().Str("badge", c.badge()).Msg("delete requested")
	c.props.OnDelete()
	return true
}

func (c Card) fallbackField() cardField {
	switch {
	case c.editingTitle:
		return fieldTitle
	case c.editingDescription:
		return fieldDescription
	default:
		return fieldNone
	}
}

// setActive routes keyboard focus to f. A field keeps its edit mode when it
// loses focus.
func (c *Card) setActive(f cardField) {
	c.active = f
	switch f {
	case fieldTitle:
		c.descInput.Blur()
		c.titleInput.Focus()
	case fieldDescription:
		c.titleInput.Blur()
		c.descInput.Focus()
	default:
		c.titleInput.Blur()
		c.descInput.Blur()
	}
}
