package tui

import (
	"issuecard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows an interactive card for issue and returns the issue as the host
// holds it after the user quits or deletes it.
func Run(issue model.Issue, opts RunOptions) (Result, error) {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := newHostModel(issue, opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return Result{}, err
	}
	return m.result(), nil
}

// RenderStatic renders the card once, in view mode, without starting a program.
func RenderStatic(issue model.Issue, opts RunOptions) string {
	applyThemePreference()
	applyGlyphPreference()

	p := PropsFromIssue(issue)
	if opts.AllowDelete {
		p.OnDelete = func() {}
	}
	c := NewCard(p)
	if opts.Width > 0 {
		c.SetWidth(opts.Width)
	}
	return c.View()
}
