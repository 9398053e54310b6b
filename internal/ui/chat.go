package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"intervo/internal/domain"
	"intervo/internal/services"
	"intervo/internal/theme"
)

func (m *Model) updateChat(msg tea.KeyMsg, state services.InterviewState) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FinishEarly):
		if state.IsAiTyping {
			return m, nil
		}
		return m, m.finishEarlyCmd()

	case msg.String() == "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" || state.IsAiTyping {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.sendAnswerCmd(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) renderChat(state services.InterviewState) string {
	var b strings.Builder

	session, ok := m.controller.Session(state.CurrentSessionID)
	if ok {
		b.WriteString(theme.TitleStyle.Render(session.Title))
		b.WriteString("\n")
		b.WriteString(m.renderTranscript(session.Messages))
	}

	if state.IsAiTyping {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(theme.TypingStyle.Render(" AI is thinking…"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.input.View())

	return lipgloss.NewStyle().Width(m.chatWidth()).Render(b.String())
}

func (m *Model) renderTranscript(messages []domain.Message) string {
	width := m.chatWidth()
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		switch msg.Type {
		case domain.MessageUser:
			lines = append(lines, theme.UserMessageStyle.Width(width).Render(msg.Text))
		case domain.MessageAI:
			lines = append(lines, theme.AIMessageStyle.Width(width).Render(msg.Text))
		}
	}
	return strings.Join(lines, "\n\n")
}
