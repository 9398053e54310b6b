package services

import (
	"errors"
	"fmt"

	"intervo/internal/domain"
)

// Structural store errors. These signal contract violations by the caller,
// not expected runtime conditions: correct controller usage never triggers
// them, they exist to make misuse detectable in tests.
var (
	ErrDuplicateSession = errors.New("session already exists")
	ErrSessionNotFound  = errors.New("session not found")
)

// SessionStore is an ordered collection of interview sessions keyed by the
// server-issued session id. It is not safe for concurrent use on its own;
// the owning controller serializes access.
type SessionStore struct {
	order    []string
	sessions map[string]*domain.Session
}

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

// Add appends a session to the end of the collection
func (s *SessionStore) Add(session domain.Session) error {
	if _, exists := s.sessions[session.ID]; exists {
		return fmt.Errorf("add session %q: %w", session.ID, ErrDuplicateSession)
	}
	stored := session.Clone()
	s.sessions[session.ID] = &stored
	s.order = append(s.order, session.ID)
	return nil
}

// Remove deletes the session with the given id. The store does not track
// which session is currently selected; clearing the selection after removing
// it is the caller's job.
func (s *SessionStore) Remove(id string) error {
	if _, exists := s.sessions[id]; !exists {
		return fmt.Errorf("remove session %q: %w", id, ErrSessionNotFound)
	}
	delete(s.sessions, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// AppendMessage appends a message to the session's transcript, preserving
// conversation order
func (s *SessionStore) AppendMessage(sessionID string, msg domain.Message) error {
	session, exists := s.sessions[sessionID]
	if !exists {
		return fmt.Errorf("append message to session %q: %w", sessionID, ErrSessionNotFound)
	}
	session.Messages = append(session.Messages, msg)
	return nil
}

// Get returns a copy of the session with the given id
func (s *SessionStore) Get(id string) (domain.Session, bool) {
	session, exists := s.sessions[id]
	if !exists {
		return domain.Session{}, false
	}
	return session.Clone(), true
}

// List returns copies of all sessions in insertion order
func (s *SessionStore) List() []domain.Session {
	result := make([]domain.Session, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.sessions[id].Clone())
	}
	return result
}

// Len returns the number of sessions held
func (s *SessionStore) Len() int {
	return len(s.order)
}
