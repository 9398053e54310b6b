package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LastMessage(t *testing.T) {
	var session Session
	_, ok := session.LastMessage()
	assert.False(t, ok)

	session.Messages = []Message{
		{ID: 1, Text: "Opening question?", Type: MessageAI},
		{ID: 2, Text: "my answer", Type: MessageUser},
	}
	last, ok := session.LastMessage()
	require.True(t, ok)
	assert.Equal(t, MessageID(2), last.ID)
	assert.Equal(t, MessageUser, last.Type)
}

func TestSession_CloneIsDeep(t *testing.T) {
	original := Session{
		ID:    "sess-1",
		Title: "Backend Engineer Interview",
		Messages: []Message{
			{ID: 1, Text: "Opening question?", Type: MessageAI},
		},
	}

	clone := original.Clone()
	clone.Messages[0].Text = "mutated"
	clone.Messages = append(clone.Messages, Message{ID: 2, Text: "extra", Type: MessageUser})

	assert.Equal(t, "Opening question?", original.Messages[0].Text)
	assert.Len(t, original.Messages, 1)
}

func TestResult_Valid(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  bool
	}{
		{name: "lower bound", score: 0, want: true},
		{name: "upper bound", score: 100, want: true},
		{name: "mid range", score: 73, want: true},
		{name: "negative", score: -1, want: false},
		{name: "over range", score: 101, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Result{Score: tt.score}
			assert.Equal(t, tt.want, result.Valid())
		})
	}
}

func TestInterviewTitle(t *testing.T) {
	assert.Equal(t, "Data Scientist Interview", InterviewTitle("Data Scientist"))
	assert.Equal(t, "Backend Engineer Interview", InterviewTitle("Backend Engineer"))
}
