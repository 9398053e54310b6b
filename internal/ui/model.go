package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"intervo/internal/logging"
	"intervo/internal/services"
	"intervo/internal/theme"
)

type uiState int

const (
	stateMain uiState = iota
	stateConfirmingDelete
)

// Config holds UI construction options
type Config struct {
	ErrorClearDelay time.Duration
	Roles           []string
}

// Model is the top-level Bubble Tea model. All interview state lives in the
// controller; the model holds only presentation concerns (focus, cursors,
// forms) and reads controller snapshots when rendering.
type Model struct {
	controller *services.InterviewController
	errors     *ErrorManager
	keys       KeyMap
	roles      []string

	state          uiState
	width          int
	height         int
	wasActive      bool
	startRequested bool

	input          textinput.Model
	spinner        spinner.Model
	roleForm       *huh.Form
	selectedRole   string
	sidebarCursor  int
	sidebarFocused bool

	deleteForm    *huh.Form
	deleteTarget  string
	confirmDelete bool
}

// NewModel creates the top-level model around a controller instance
func NewModel(controller *services.InterviewController, cfg Config) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorAccent)

	input := textinput.New()
	input.Placeholder = "Type your answer…"
	input.Prompt = "> "

	delay := cfg.ErrorClearDelay
	if delay == 0 {
		delay = 10 * time.Second
	}

	m := &Model{
		controller: controller,
		errors:     NewErrorManager(delay),
		input:      input,
		keys:       DefaultKeyMap(),
		roles:      cfg.Roles,
		spinner:    sp,
		state:      stateMain,
	}
	m.roleForm = m.newRoleForm()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.roleForm.Init(),
		m.loadSessionsCmd(),
		m.spinner.Tick,
		textinput.Blink,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, m.chatWidth()-4)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearErrorMsg:
		m.errors.Clear(msg)
		return m, nil

	case sessionsLoadedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load sessions", "error", msg.err)
			return m.reportError(msg.err)
		}
		return m, nil

	case interviewStartedMsg:
		m.startRequested = false
		if msg.err != nil {
			m.roleForm = m.newRoleForm()
			model, cmd := m.reportError(msg.err)
			return model, tea.Batch(cmd, m.roleForm.Init())
		}
		return m.syncActivity()

	case answerSubmittedMsg:
		if msg.err != nil {
			return m.reportError(msg.err)
		}
		return m.syncActivity()

	case interviewFinishedMsg:
		if msg.err != nil {
			return m.reportError(msg.err)
		}
		return m.syncActivity()

	case sessionDeletedMsg:
		if msg.err != nil {
			return m.reportError(msg.err)
		}
		if m.sidebarCursor >= len(m.controller.Sessions()) {
			m.sidebarCursor = max(0, len(m.controller.Sessions())-1)
		}
		return m.syncActivity()
	}

	// The result modal swallows all key input until dismissed
	if m.controller.State().ResultVisible {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "enter", "q":
				m.controller.DismissResult()
				return m.syncActivity()
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch m.state {
	case stateMain:
		return m.updateMain(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	}
	return m, nil
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	state := m.controller.State()
	active := state.InterviewActive && state.CurrentSessionID != ""

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.NewChat):
			m.controller.NewChat()
			m.sidebarFocused = false
			return m.syncActivity()

		case key.Matches(keyMsg, m.keys.Sidebar):
			if len(m.controller.Sessions()) > 0 {
				m.sidebarFocused = !m.sidebarFocused
			}
			return m, nil
		}

		if m.sidebarFocused {
			return m.updateSidebar(keyMsg)
		}

		if active {
			return m.updateChat(keyMsg, state)
		}
	}

	if !active {
		return m.updateDashboard(msg, state)
	}

	// Remaining messages (blink ticks etc.) go to the chat input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// syncActivity reconciles presentation state with the controller after an
// operation completes or the selection changes: entering the chat focuses
// the input, leaving it rebuilds the role form.
func (m *Model) syncActivity() (tea.Model, tea.Cmd) {
	state := m.controller.State()
	active := state.InterviewActive && state.CurrentSessionID != ""
	if active == m.wasActive {
		return m, nil
	}
	m.wasActive = active

	if active {
		m.sidebarFocused = false
		m.input.Focus()
		m.alignSidebarCursor(state.CurrentSessionID)
		return m, textinput.Blink
	}

	m.input.Blur()
	m.input.SetValue("")
	m.roleForm = m.newRoleForm()
	return m, m.roleForm.Init()
}

func (m *Model) reportError(err error) (tea.Model, tea.Cmd) {
	m.errors.SetError(err)
	return m, m.errors.ClearAfterDelay()
}

func (m *Model) alignSidebarCursor(sessionID string) {
	for i, s := range m.controller.Sessions() {
		if s.ID == sessionID {
			m.sidebarCursor = i
			return
		}
	}
}

func (m *Model) chatWidth() int {
	w := m.width - sidebarWidth - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) View() string {
	if state := m.controller.State(); state.ResultVisible && state.Result != nil {
		return m.renderResultCard(*state.Result)
	}

	if m.state == stateConfirmingDelete && m.deleteForm != nil {
		return m.renderDeleteConfirm()
	}

	state := m.controller.State()
	active := state.InterviewActive && state.CurrentSessionID != ""

	var main string
	if active {
		main = m.renderChat(state)
	} else {
		main = m.renderDashboard(state)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(state), main)

	var footer strings.Builder
	if err := m.errors.GetError(); err != nil {
		footer.WriteString("\n" + theme.ErrorStyle.Render("Error: "+err.Error()))
	}
	footer.WriteString("\n" + m.renderHelp(active))

	return body + footer.String()
}

func (m *Model) renderHelp(active bool) string {
	pairs := []struct{ k, label string }{
		{"tab", "sessions"},
		{"ctrl+n", "new"},
		{"ctrl+c", "quit"},
	}
	if active {
		pairs = append([]struct{ k, label string }{
			{"enter", "send"},
			{"ctrl+e", "end interview"},
		}, pairs...)
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts,
			theme.HelpShortcutStyle.Render(p.k)+" "+theme.HelpLabelStyle.Render(p.label))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  ·  "))
}

// Commands — each wraps one blocking controller call in a goroutine.

func (m *Model) loadSessionsCmd() tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return sessionsLoadedMsg{err: c.LoadSessions(context.Background())}
	}
}

func (m *Model) startInterviewCmd(role string) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return interviewStartedMsg{err: c.StartInterview(context.Background(), role)}
	}
}

func (m *Model) sendAnswerCmd(text string) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return answerSubmittedMsg{err: c.SendAnswer(context.Background(), text)}
	}
}

func (m *Model) finishEarlyCmd() tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return interviewFinishedMsg{err: c.FinishEarly(context.Background())}
	}
}

func (m *Model) deleteSessionCmd(id string) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return sessionDeletedMsg{id: id, err: c.DeleteSession(context.Background(), id)}
	}
}
