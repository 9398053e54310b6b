package ports

import (
	"context"

	"intervo/internal/domain"
)

// CreatedSession is the service's response to a create-session call
type CreatedSession struct {
	ID    string
	Title string
}

// AnswerOutcome is the two-case variant returned by SubmitAnswer: either the
// interview continues with another question, or it completes with a result.
// The cases are concrete types so callers discriminate with a type switch
// instead of probing a boolean field.
type AnswerOutcome interface {
	isAnswerOutcome()
}

// Continuation carries the next AI question
type Continuation struct {
	Question string
}

func (Continuation) isAnswerOutcome() {}

// Completion carries the terminal result
type Completion struct {
	Result domain.Result
}

func (Completion) isAnswerOutcome() {}

// SessionLifecycle manages sessions held by the interview service
type SessionLifecycle interface {
	CreateSession(ctx context.Context, title string) (CreatedSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context) ([]domain.SessionSummary, error)
}

// InterviewRunner drives the question/answer cycle of one session
type InterviewRunner interface {
	// StartInterview binds the role to the session and returns the opening
	// AI question.
	StartInterview(ctx context.Context, sessionID, role string) (string, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (AnswerOutcome, error)
	// FinishInterview ends the session early and returns its result.
	FinishInterview(ctx context.Context, sessionID string) (domain.Result, error)
}

// InterviewService is the composite interface for the remote service
type InterviewService interface {
	SessionLifecycle
	InterviewRunner
}
