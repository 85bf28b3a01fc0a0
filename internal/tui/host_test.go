package tui

import (
	"strings"
	"testing"

	"issuecard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func sendHost(t *testing.T, m hostModel, msg tea.Msg) (hostModel, tea.Cmd) {
	t.Helper()
	mAny, cmd := m.Update(msg)
	hm, ok := mAny.(hostModel)
	if !ok {
		t.Fatalf("expected hostModel, got %T", mAny)
	}
	return hm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHost_EditUpdatesAuthoritativeIssue(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{AllowEdit: true, AllowDelete: true})

	m, _ = sendHost(t, m, runes("e"))
	if !m.card.EditingTitle() {
		t.Fatalf("expected e to start title edit")
	}
	m, _ = sendHost(t, m, runes(" Fix bug now "))
	m, _ = sendHost(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.Issue.Title != "Fix bug now" || res.Issue.Description != "" {
		t.Fatalf("unexpected issue after edit: %+v", res.Issue)
	}
	if got := m.card.Props().Title; got != "Fix bug now" {
		t.Fatalf("expected card props refreshed from host, got %q", got)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != model.CardEventEdit {
		t.Fatalf("expected one edit event, got %+v", res.Events)
	}
	if res.Events[0].Description == nil || *res.Events[0].Description != "" {
		t.Fatalf("expected explicit empty description in event")
	}
	if !strings.Contains(xansi.Strip(m.View()), "Fix bug now") {
		t.Fatalf("expected view to show the new title:\n%s", xansi.Strip(m.View()))
	}
}

func TestHost_DescriptionEdit(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug", Description: "old"}, RunOptions{AllowEdit: true})

	m, _ = sendHost(t, m, runes("d"))
	m, _ = sendHost(t, m, runes("Steps: open, save"))
	m, _ = sendHost(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if got := m.result().Issue.Description; got != "Steps: open, save" {
		t.Fatalf("expected description saved, got %q", got)
	}
	if m.card.Editing() {
		t.Fatalf("expected card back in view mode")
	}
}

func TestHost_DeleteQuits(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{AllowDelete: true})

	m, cmd := sendHost(t, m, runes("x"))
	if !isQuit(cmd) {
		t.Fatalf("expected delete to quit")
	}
	res := m.result()
	if !res.Deleted || len(res.Events) != 1 || res.Events[0].Kind != model.CardEventDelete {
		t.Fatalf("unexpected result after delete: %+v", res)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after quitting")
	}
}

func TestHost_DeleteDisabled(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{})
	if m.card.HasDeleteAction() {
		t.Fatalf("expected no delete action when deletes are not allowed")
	}
	m, cmd := sendHost(t, m, runes("x"))
	if isQuit(cmd) || m.result().Deleted {
		t.Fatalf("x must not delete without AllowDelete")
	}
}

func TestHost_QuitOnlyWhenNotEditing(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{AllowEdit: true})

	m, _ = sendHost(t, m, runes("e"))
	m, cmd := sendHost(t, m, runes("q"))
	if isQuit(cmd) {
		t.Fatalf("q must be typed into the title while editing")
	}
	if got := m.card.TitleBuffer(); got != "q" {
		t.Fatalf("expected q to replace the selected title, got %q", got)
	}

	m, _ = sendHost(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = sendHost(t, m, runes("q"))
	if !isQuit(cmd) {
		t.Fatalf("expected q to quit in view mode")
	}
}

func TestHost_CtrlCAlwaysQuits(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{AllowEdit: true})
	m, _ = sendHost(t, m, runes("e"))
	_, cmd := sendHost(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("expected ctrl+c to quit while editing")
	}
}

func TestHost_ReadOnlyKeepsIssue(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{})

	m, _ = sendHost(t, m, runes("e"))
	m, _ = sendHost(t, m, runes("Other"))
	m, _ = sendHost(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.card.EditingTitle() {
		t.Fatalf("expected save to be a no-op without edit permission")
	}
	if got := m.result().Issue.Title; got != "Fix bug" {
		t.Fatalf("expected issue untouched, got %q", got)
	}
	if len(m.result().Events) != 0 {
		t.Fatalf("expected no events")
	}
}

func TestHost_MouseUsesCardOrigin(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{AllowEdit: true})

	// Title row: card origin + border + header + blank line.
	m, _ = sendHost(t, m, tea.MouseMsg{
		X:      hostOriginX + cardFrameX,
		Y:      hostOriginY + cardFrameY + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if !m.card.EditingTitle() {
		t.Fatalf("expected click on title to enter edit mode")
	}
}

func TestHost_WindowSizeCapsCardWidth(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{})
	m, _ = sendHost(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	if got := m.card.Width(); got != defaultCardWidth {
		t.Fatalf("expected width capped at %d, got %d", defaultCardWidth, got)
	}
	m, _ = sendHost(t, m, tea.WindowSizeMsg{Width: 40, Height: 40})
	if got := m.card.Width(); got != 38 {
		t.Fatalf("expected width to follow the terminal, got %d", got)
	}

	wide := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{Width: 80})
	wide, _ = sendHost(t, wide, tea.WindowSizeMsg{Width: 200, Height: 40})
	if got := wide.card.Width(); got != 80 {
		t.Fatalf("expected configured width 80, got %d", got)
	}
}

func TestHost_ViewShowsHelp(t *testing.T) {
	m := newHostModel(model.Issue{Index: 4, Title: "Fix bug"}, RunOptions{AllowEdit: true, AllowDelete: true})
	out := xansi.Strip(m.View())
	for _, want := range []string{"STA-4", "edit title", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in host view:\n%s", want, out)
		}
	}

	m, _ = sendHost(t, m, runes("e"))
	out = xansi.Strip(m.View())
	if strings.Contains(out, "edit title") || !strings.Contains(out, "cancel") {
		t.Fatalf("expected edit-mode help:\n%s", out)
	}
}

func TestRenderStatic(t *testing.T) {
	it := model.Issue{Index: 9, Title: "Render me", Description: "Body text"}

	out := xansi.Strip(RenderStatic(it, RunOptions{AllowDelete: true, Width: 40}))
	for _, want := range []string{"STA-9", "Render me", "Body text", glyphTrash()} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in static render:\n%s", want, out)
		}
	}

	out = xansi.Strip(RenderStatic(it, RunOptions{}))
	if strings.Contains(out, glyphTrash()) {
		t.Fatalf("expected no delete button:\n%s", out)
	}
}
