package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// CardKeyMap holds the card's bindings. Card.KeyMap enables only the ones that
// apply to the current mode, so it can be passed straight to help.Model.View.
type CardKeyMap struct {
	EditTitle       key.Binding
	EditDescription key.Binding
	Delete          key.Binding
	SaveTitle       key.Binding
	SaveDescription key.Binding
	Cancel          key.Binding
}

func DefaultCardKeyMap() CardKeyMap {
	return CardKeyMap{
		EditTitle: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit title"),
		),
		EditDescription: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "edit description"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		SaveTitle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		SaveDescription: key.NewBinding(
			// alt+enter is how terminals report Cmd/Meta+Enter; ctrl+s works everywhere.
			key.WithKeys("alt+enter", "ctrl+s"),
			key.WithHelp("alt+enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k CardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditTitle, k.EditDescription, k.Delete, k.SaveTitle, k.SaveDescription, k.Cancel}
}

func (k CardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EditTitle, k.EditDescription, k.Delete},
		{k.SaveTitle, k.SaveDescription, k.Cancel},
	}
}

// decodeUnknownCSIString turns Bubble Tea's "?CSI[49 51 59 57 117]?" rendering
// of an unmapped sequence back into its parameter text ("13;9u").
func decodeUnknownCSIString(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "?CSI[") || !strings.HasSuffix(raw, "]?") {
		return "", false
	}
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "?CSI["), "]?")
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return "", false
	}
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 255 {
			return "", false
		}
		out = append(out, byte(n))
	}
	return string(out), true
}

// Modifier bits as encoded by xterm modifyOtherKeys and the kitty keyboard
// protocol (the parameter is 1 + bits).
const (
	modAlt   = 2
	modSuper = 8
	modMeta  = 32
)

// isMetaEnterSequence reports whether a decoded CSI parameter string is Enter
// with a Meta, Super (Cmd) or Alt modifier: "27;<mod>;13~" or "13;<mod>u".
func isMetaEnterSequence(seq string) bool {
	var params []string
	switch {
	case strings.HasSuffix(seq, "~"):
		params = strings.Split(strings.TrimSuffix(seq, "~"), ";")
		if len(params) != 3 || params[0] != "27" || params[2] != "13" {
			return false
		}
		params = params[1:2]
	case strings.HasSuffix(seq, "u"):
		params = strings.Split(strings.TrimSuffix(seq, "u"), ";")
		if len(params) != 2 || params[0] != "13" {
			return false
		}
		params = params[1:2]
	default:
		return false
	}
	// kitty may append ":<event-type>" to the modifier field.
	modStr, _, _ := strings.Cut(params[0], ":")
	mod, err := strconv.Atoi(modStr)
	if err != nil || mod < 1 {
		return false
	}
	bits := mod - 1
	return bits&(modAlt|modSuper|modMeta) != 0
}
