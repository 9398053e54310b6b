package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"intervo/internal/services"
	"intervo/internal/theme"
)

const sidebarWidth = 28

func (m *Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sessions := m.controller.Sessions()
	if len(sessions) == 0 {
		m.sidebarFocused = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.sidebarCursor < len(sessions)-1 {
			m.sidebarCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.controller.SelectSession(sessions[m.sidebarCursor].ID)
		m.sidebarFocused = false
		return m.syncActivity()

	case key.Matches(msg, m.keys.Delete):
		m.deleteTarget = sessions[m.sidebarCursor].ID
		m.confirmDelete = false
		m.deleteForm = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", sessions[m.sidebarCursor].Title)).
				Description("The session and its history are removed from the service.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.confirmDelete),
		))
		m.state = stateConfirmingDelete
		return m, m.deleteForm.Init()

	case msg.String() == "esc":
		m.sidebarFocused = false
		return m, nil
	}

	return m, nil
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateMain
			m.deleteForm = nil
			return m, nil
		}
	}

	form, cmd := m.deleteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.deleteForm = f
	}

	if m.deleteForm.State == huh.StateCompleted {
		id := m.deleteTarget
		confirmed := m.confirmDelete
		m.state = stateMain
		m.deleteForm = nil
		m.deleteTarget = ""
		if confirmed {
			return m, m.deleteSessionCmd(id)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) renderDeleteConfirm() string {
	if m.deleteForm == nil {
		return ""
	}
	return m.deleteForm.View()
}

func (m *Model) renderSidebar(state services.InterviewState) string {
	sessions := m.controller.Sessions()

	var b strings.Builder
	b.WriteString(theme.AppNameStyle.Render("intervo"))
	b.WriteString("\n")
	b.WriteString(theme.SubtitleStyle.Render("interview practice"))
	b.WriteString("\n\n")

	if len(sessions) == 0 {
		b.WriteString(theme.MutedStyle.Render("No sessions yet"))
	}

	for i, session := range sessions {
		cursor := "  "
		style := theme.SessionTitleStyle
		if m.sidebarFocused && i == m.sidebarCursor {
			cursor = "> "
			style = theme.SelectedSessionStyle
		}

		marker := " "
		if session.ID == state.CurrentSessionID {
			marker = "*"
		}

		b.WriteString(cursor + marker + style.Render(truncate(session.Title, sidebarWidth-6)))
		b.WriteString("\n")
		if created := formatRelativeTime(session.CreatedAt); created != "" {
			b.WriteString("   " + theme.MutedStyle.Render(created))
			b.WriteString("\n")
		}
	}

	return theme.SidebarStyle.Width(sidebarWidth).Render(b.String())
}

// truncate shortens s to maxLen runes, never splitting a multi-byte rune
func truncate(s string, maxLen int) string {
	if maxLen <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
