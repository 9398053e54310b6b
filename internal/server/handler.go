package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"intervo/internal/adapters/api"
	"intervo/internal/config"
	"intervo/internal/logging"
	"intervo/internal/services"
	"intervo/internal/ui"
)

// sessionModel wraps ui.Model to log SSH session lifetime
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a Bubbletea model for each SSH session. Every session
// gets its own API client and controller so nothing is shared between
// concurrent users.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.New().String()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	serverURL := s.settings.ServerURL
	if serverURL == "" {
		serverURL = config.DefaultServerURL
	}

	errorClearDelay := 10 * time.Second
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	roles := []string(s.settings.Roles)
	if len(roles) == 0 {
		roles = config.DefaultRoles
	}

	client := api.NewClient(serverURL, s.settings.Token, nil, logging.Logger)
	controller := services.NewInterviewController(client, logging.Logger)

	model := ui.NewModel(controller, ui.Config{
		ErrorClearDelay: errorClearDelay,
		Roles:           roles,
	})

	wrappedModel := &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}
