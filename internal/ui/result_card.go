package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"intervo/internal/domain"
	"intervo/internal/theme"
)

// renderResultCard renders the terminal score modal shown when an interview
// completes or is finished early
func (m *Model) renderResultCard(result domain.Result) string {
	scoreStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ScoreColor(result.Score))

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.ResultHeadingStyle.Render("Interview Complete!"),
		theme.ResultLabelStyle.Render("Here's how you performed"),
		"",
		theme.ResultLabelStyle.Render("SCORE"),
		scoreStyle.Render(fmt.Sprintf("%d", result.Score)),
		theme.ResultLabelStyle.Render("out of 100"),
		"",
		theme.ResultLabelStyle.Render("FEEDBACK"),
		theme.FeedbackStyle.Render(result.Feedback),
		"",
		theme.HelpLabelStyle.Render("esc to close"),
	)

	card := theme.ResultBoxStyle.Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
