package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"intervo/internal/services"
	"intervo/internal/theme"
)

// newRoleForm builds the role picker shown when no interview is active
func (m *Model) newRoleForm() *huh.Form {
	m.selectedRole = ""
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select a role").
			Description("Choose your target role and start a realistic AI-powered interview.\nTake your time and explain your thinking clearly.").
			Options(huh.NewOptions(m.roles...)...).
			Value(&m.selectedRole),
	))
}

func (m *Model) updateDashboard(msg tea.Msg, state services.InterviewState) (tea.Model, tea.Cmd) {
	// While the create+start sequence is in flight only the spinner animates
	if state.IsStarting || m.startRequested {
		return m, nil
	}

	form, cmd := m.roleForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.roleForm = f
	}

	if m.roleForm.State == huh.StateCompleted && m.selectedRole != "" {
		m.startRequested = true
		return m, tea.Batch(m.startInterviewCmd(m.selectedRole), m.spinner.Tick)
	}

	return m, cmd
}

func (m *Model) renderDashboard(state services.InterviewState) string {
	title := theme.TitleStyle.Render("Technical Interview Simulator")

	if state.IsStarting || m.startRequested {
		body := fmt.Sprintf("\n%s Starting %s interview…\n", m.spinner.View(), m.selectedRole)
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.MutedStyle.Render(body))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.roleForm.View())

	// A completed session's transcript stays visible below the picker
	if state.CurrentSessionID != "" {
		if session, ok := m.controller.Session(state.CurrentSessionID); ok && len(session.Messages) > 0 {
			content = lipgloss.JoinVertical(lipgloss.Left,
				content,
				theme.MutedStyle.Render("— previous conversation —"),
				m.renderTranscript(session.Messages),
			)
		}
	}

	return lipgloss.NewStyle().Width(m.chatWidth()).Render(content)
}
