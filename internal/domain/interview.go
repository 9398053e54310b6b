package domain

import "time"

// MessageID identifies a message for UI list rendering. Ids are allocated
// locally and are unique only for the lifetime of one controller instance;
// they are never sent to the interview service.
type MessageID int64

// MessageType is the author of a message
type MessageType string

const (
	MessageAI   MessageType = "ai"
	MessageUser MessageType = "user"
)

// Message represents one turn of the interview conversation
type Message struct {
	ID   MessageID
	Text string
	Type MessageType
}

// Session represents one interview conversation (domain entity).
// The ID is issued by the interview service at creation and is stable for
// the session's lifetime. Messages are append-only, in conversation order.
type Session struct {
	CreatedAt time.Time
	ID        string
	Messages  []Message
	Role      string
	Title     string
}

// LastMessage returns the most recent message, if any
func (s *Session) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// Clone returns a deep copy of the session so callers can hand out
// snapshots without exposing the store's backing slices
func (s *Session) Clone() Session {
	clone := *s
	clone.Messages = make([]Message, len(s.Messages))
	copy(clone.Messages, s.Messages)
	return clone
}

// Result is the terminal score and feedback produced when a session ends.
// SessionID is a plain lookup field, not an ownership edge: deleting the
// session does not invalidate a result already shown.
type Result struct {
	CreatedAt time.Time
	Feedback  string
	ID        string
	Score     int
	SessionID string
}

// Valid reports whether the score is within the service's documented range
func (r Result) Valid() bool {
	return r.Score >= 0 && r.Score <= 100
}

// SessionSummary is a row from the service's session listing, used to
// rehydrate the local store on startup. Transcript history stays remote.
type SessionSummary struct {
	CreatedAt time.Time
	ID        string
	Role      string
	Status    string
	Title     string
}

// InterviewTitle derives the session title from the chosen role, matching
// what the service stores at creation time.
func InterviewTitle(role string) string {
	return role + " Interview"
}
