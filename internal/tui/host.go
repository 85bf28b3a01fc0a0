package tui

import (
	"strings"

	"issuecard/internal/logging"
	"issuecard/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type RunOptions struct {
	AllowEdit   bool
	AllowDelete bool
	// Width caps the card width; 0 uses the default.
	Width int
}

// Result is what the host knows once the program exits.
type Result struct {
	Issue   model.Issue       `json:"issue"`
	Deleted bool              `json:"deleted"`
	Events  []model.CardEvent `json:"events"`
}

// hostState is the authoritative issue. It lives behind a pointer so card
// callbacks fired inside Update reach the same copy the host renders from.
type hostState struct {
	issue   model.Issue
	deleted bool
	events  []model.CardEvent
}

type hostKeyMap struct {
	Quit key.Binding
	Help key.Binding
}

func defaultHostKeyMap() hostKeyMap {
	return hostKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// helpKeys merges the card's mode-dependent bindings with the host's.
type helpKeys struct {
	card CardKeyMap
	host hostKeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.card.ShortHelp(), k.host.Help, k.host.Quit)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append(k.card.FullHelp(), []key.Binding{k.host.Help, k.host.Quit})
}

// hostModel is the caller side of a single card: it owns the issue, applies
// proposed edits, and re-renders the card with fresh props.
type hostModel struct {
	state *hostState
	opts  RunOptions

	card Card
	help help.Model
	keys hostKeyMap

	width    int
	quitting bool
}

// Cards are drawn one row down and one column in.
const (
	hostOriginX = 1
	hostOriginY = 1
)

func newHostModel(issue model.Issue, opts RunOptions) hostModel {
	m := hostModel{
		state: &hostState{issue: issue},
		opts:  opts,
		help:  help.New(),
		keys:  defaultHostKeyMap(),
	}
	m.card = NewCard(m.props())
	if opts.Width > 0 {
		m.card.SetWidth(opts.Width)
	}
	m.card.SetOrigin(hostOriginX, hostOriginY)
	m.card.Focus()
	return m
}

func (m hostModel) props() CardProps {
	p := PropsFromIssue(m.state.issue)
	st := m.state
	if m.opts.AllowEdit {
		p.OnEdit = func(title, description string) {
			st.issue.Title = title
			st.issue.Description = description
			desc := description
			st.events = append(st.events, model.CardEvent{Kind: model.CardEventEdit, Title: title, Description: &desc})
			logging.L().Info().Str("badge", st.issue.Badge()).Str("title", title).Msg("issue edited")
		}
	}
	if m.opts.AllowDelete {
		p.OnDelete = func() {
			st.deleted = true
			st.events = append(st.events, model.CardEvent{Kind: model.CardEventDelete})
			logging.L().Info().Str("badge", st.issue.Badge()).Msg("issue deleted")
		}
	}
	return p
}

func (m hostModel) result() Result {
	events := append([]model.CardEvent(nil), m.state.events...)
	if events == nil {
		events = []model.CardEvent{}
	}
	return Result{Issue: m.state.issue, Deleted: m.state.deleted, Events: events}
}

func (m hostModel) Init() tea.Cmd { return nil }

func (m hostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width - hostOriginX
		limit := defaultCardWidth
		if m.opts.Width > 0 {
			limit = m.opts.Width
		}
		m.card.SetWidth(min(msg.Width-2*hostOriginX, limit))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if !m.card.Editing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.card, cmd = m.card.Update(msg)
	// Re-render from the authoritative issue, as a parent would after a callback.
	m.card.SetProps(m.props())
	if m.state.deleted {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m hostModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", hostOriginY))
	pad := strings.Repeat(" ", hostOriginX)
	for _, line := range strings.Split(m.card.View(), "\n") {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteString(m.help.View(helpKeys{card: m.card.KeyMap(), host: m.keys}))
	return b.String()
}
