package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"intervo/internal/domain"
	"intervo/internal/ports"
)

// RetainAnswerOnFailure names the optimistic-update policy: when submitting
// an answer fails, the user message already appended to the transcript is
// kept rather than rolled back. Losing the typed text would be worse than a
// dangling unanswered turn.
const RetainAnswerOnFailure = true

// InterviewState is a read-only snapshot of the controller's orchestration
// flags, taken atomically with respect to controller mutations.
type InterviewState struct {
	CurrentSessionID string
	InterviewActive  bool
	IsAiTyping       bool
	IsStarting       bool
	Result           *domain.Result
	ResultVisible    bool
}

// InterviewController sequences the create/start/answer/finish/delete cycle
// against the remote interview service and is the single source of truth for
// the UI-observable orchestration state.
//
// Remote calls happen outside the lock so reads stay responsive while a call
// is in flight; the in-flight flags (isStarting, isAiTyping) are the sole
// guard against overlapping operations on the same session. A late response
// is still applied to the session that issued it, even if the user has since
// navigated away.
type InterviewController struct {
	api    ports.InterviewService
	ids    *MessageIDAllocator
	logger *slog.Logger

	mu               sync.RWMutex
	store            *SessionStore
	presenter        *ResultPresenter
	currentSessionID string
	interviewActive  bool
	isStarting       bool
	isAiTyping       bool
}

// NewInterviewController creates a controller with its own store, allocator
// and presenter. Multiple controllers are fully independent; nothing is
// shared through package state.
func NewInterviewController(api ports.InterviewService, logger *slog.Logger) *InterviewController {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &InterviewController{
		api:       api,
		ids:       NewMessageIDAllocator(),
		logger:    logger,
		store:     NewSessionStore(),
		presenter: NewResultPresenter(),
	}
}

// LoadSessions rehydrates the store from the service's session listing.
// Sessions already present locally are left untouched; listed sessions are
// added with empty transcripts since history stays on the service.
func (c *InterviewController) LoadSessions(ctx context.Context) error {
	summaries, err := c.api.ListSessions(ctx)
	if err != nil {
		c.logger.Error("Failed to list sessions", "error", err)
		return fmt.Errorf("list sessions: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, summary := range summaries {
		if _, exists := c.store.Get(summary.ID); exists {
			continue
		}
		session := domain.Session{
			CreatedAt: summary.CreatedAt,
			ID:        summary.ID,
			Role:      summary.Role,
			Title:     summary.Title,
		}
		if err := c.store.Add(session); err != nil {
			return err
		}
	}
	c.logger.Debug("Sessions rehydrated", "count", len(summaries))
	return nil
}

// StartInterview creates a session for the role, obtains the opening AI
// question and makes the new session current. On any remote failure the
// store is left unchanged: no partial session is ever added.
func (c *InterviewController) StartInterview(ctx context.Context, role string) error {
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("start interview: role must not be empty")
	}

	c.mu.Lock()
	if c.isStarting {
		c.mu.Unlock()
		return nil
	}
	c.isStarting = true
	c.mu.Unlock()

	// Cleared on every exit path, success or failure
	defer func() {
		c.mu.Lock()
		c.isStarting = false
		c.mu.Unlock()
	}()

	title := domain.InterviewTitle(role)
	created, err := c.api.CreateSession(ctx, title)
	if err != nil {
		c.logger.Error("Failed to create session", "role", role, "error", err)
		return fmt.Errorf("create session: %w", err)
	}

	question, err := c.api.StartInterview(ctx, created.ID, role)
	if err != nil {
		c.logger.Error("Failed to start interview", "session_id", created.ID, "error", err)
		return fmt.Errorf("start interview: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	opening := domain.Message{
		ID:   c.ids.Next(),
		Text: question,
		Type: domain.MessageAI,
	}
	session := domain.Session{
		CreatedAt: time.Now(),
		ID:        created.ID,
		Messages:  []domain.Message{opening},
		Role:      role,
		Title:     title,
	}
	if err := c.store.Add(session); err != nil {
		return err
	}
	c.currentSessionID = created.ID
	c.interviewActive = true
	c.logger.Info("Interview started", "session_id", created.ID, "role", role)
	return nil
}

// SendAnswer appends the user's answer to the current session and submits it.
// The user message is appended optimistically, before the round-trip
// completes, and is retained even when the call fails. A call made while a
// turn is already in flight, or with no current session, is a no-op.
func (c *InterviewController) SendAnswer(ctx context.Context, text string) error {
	c.mu.Lock()
	if c.currentSessionID == "" || c.isAiTyping {
		c.mu.Unlock()
		return nil
	}
	sessionID := c.currentSessionID
	userMsg := domain.Message{
		ID:   c.ids.Next(),
		Text: text,
		Type: domain.MessageUser,
	}
	if err := c.store.AppendMessage(sessionID, userMsg); err != nil {
		c.mu.Unlock()
		return err
	}
	c.isAiTyping = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.isAiTyping = false
		c.mu.Unlock()
	}()

	outcome, err := c.api.SubmitAnswer(ctx, sessionID, text)
	if err != nil {
		// RetainAnswerOnFailure: the transcript keeps the user message
		c.logger.Error("Failed to submit answer", "session_id", sessionID, "error", err)
		return fmt.Errorf("submit answer: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch o := outcome.(type) {
	case ports.Continuation:
		aiMsg := domain.Message{
			ID:   c.ids.Next(),
			Text: o.Question,
			Type: domain.MessageAI,
		}
		if err := c.store.AppendMessage(sessionID, aiMsg); err != nil {
			// The user may delete the session while the round-trip is
			// outstanding; the late reply is dropped, not an error.
			if errors.Is(err, ErrSessionNotFound) {
				c.logger.Debug("Dropped reply for deleted session", "session_id", sessionID)
				return nil
			}
			return err
		}
	case ports.Completion:
		c.presenter.Show(o.Result)
		c.interviewActive = false
		c.logger.Info("Interview completed", "session_id", sessionID, "score", o.Result.Score)
	default:
		return fmt.Errorf("submit answer: unexpected outcome %T", outcome)
	}
	return nil
}

// FinishEarly ends the current interview before its natural conclusion and
// shows the result. The isAiTyping flag doubles as the in-flight guard.
func (c *InterviewController) FinishEarly(ctx context.Context) error {
	c.mu.Lock()
	if c.currentSessionID == "" || !c.interviewActive || c.isAiTyping {
		c.mu.Unlock()
		return nil
	}
	sessionID := c.currentSessionID
	c.isAiTyping = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.isAiTyping = false
		c.mu.Unlock()
	}()

	result, err := c.api.FinishInterview(ctx, sessionID)
	if err != nil {
		c.logger.Error("Failed to finish interview", "session_id", sessionID, "error", err)
		return fmt.Errorf("finish interview: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.presenter.Show(result)
	c.interviewActive = false
	c.logger.Info("Interview finished early", "session_id", sessionID, "score", result.Score)
	return nil
}

// DeleteSession deletes the session remotely, then removes it locally. When
// the deleted session is the current one the selection is cleared and the
// controller returns to the dashboard state. On remote failure nothing
// changes locally.
func (c *InterviewController) DeleteSession(ctx context.Context, id string) error {
	if err := c.api.DeleteSession(ctx, id); err != nil {
		c.logger.Error("Failed to delete session", "session_id", id, "error", err)
		return fmt.Errorf("delete session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Remove(id); err != nil {
		return err
	}
	if id == c.currentSessionID {
		c.currentSessionID = ""
		c.interviewActive = false
	}
	c.logger.Info("Session deleted", "session_id", id)
	return nil
}

// SelectSession makes an already-loaded session current. Purely local.
func (c *InterviewController) SelectSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentSessionID = id
	c.interviewActive = true
}

// NewChat clears the selection and returns to the dashboard state. Purely
// local.
func (c *InterviewController) NewChat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentSessionID = ""
	c.interviewActive = false
}

// DismissResult hides the result modal. The result itself is kept so the
// last result stays retrievable after dismissal.
func (c *InterviewController) DismissResult() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presenter.Hide()
}

// Sessions returns a snapshot of all sessions in insertion order
func (c *InterviewController) Sessions() []domain.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.List()
}

// Session returns a snapshot of one session
func (c *InterviewController) Session(id string) (domain.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Get(id)
}

// CurrentMessages returns the transcript of the current session, or nil when
// no session is selected
func (c *InterviewController) CurrentMessages() []domain.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentSessionID == "" {
		return nil
	}
	session, exists := c.store.Get(c.currentSessionID)
	if !exists {
		return nil
	}
	return session.Messages
}

// State returns an atomic snapshot of the orchestration flags
func (c *InterviewController) State() InterviewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	state := InterviewState{
		CurrentSessionID: c.currentSessionID,
		InterviewActive:  c.interviewActive,
		IsAiTyping:       c.isAiTyping,
		IsStarting:       c.isStarting,
		ResultVisible:    c.presenter.Visible(),
	}
	if result, ok := c.presenter.Current(); ok {
		state.Result = &result
	}
	return state
}
