package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervo/internal/domain"
)

func testSession(id string) domain.Session {
	return domain.Session{
		ID:    id,
		Role:  "Backend Engineer",
		Title: "Backend Engineer Interview",
		Messages: []domain.Message{
			{ID: 1, Text: "Opening question?", Type: domain.MessageAI},
		},
	}
}

func TestSessionStore_AddRejectsDuplicateID(t *testing.T) {
	store := NewSessionStore()

	require.NoError(t, store.Add(testSession("sess-1")))
	err := store.Add(testSession("sess-1"))
	assert.ErrorIs(t, err, ErrDuplicateSession)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_RemoveUnknownID(t *testing.T) {
	store := NewSessionStore()

	err := store.Remove("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_AppendMessageUnknownID(t *testing.T) {
	store := NewSessionStore()

	err := store.AppendMessage("missing", domain.Message{ID: 1, Text: "hi", Type: domain.MessageUser})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_ListPreservesInsertionOrder(t *testing.T) {
	store := NewSessionStore()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Add(testSession(id)))
	}
	require.NoError(t, store.Remove("a"))

	sessions := store.List()
	require.Len(t, sessions, 2)
	assert.Equal(t, "c", sessions[0].ID)
	assert.Equal(t, "b", sessions[1].ID)
}

func TestSessionStore_AppendMessagePreservesConversationOrder(t *testing.T) {
	store := NewSessionStore()
	require.NoError(t, store.Add(testSession("sess-1")))

	require.NoError(t, store.AppendMessage("sess-1", domain.Message{ID: 2, Text: "my answer", Type: domain.MessageUser}))
	require.NoError(t, store.AppendMessage("sess-1", domain.Message{ID: 3, Text: "next question?", Type: domain.MessageAI}))

	session, ok := store.Get("sess-1")
	require.True(t, ok)
	require.Len(t, session.Messages, 3)
	assert.Equal(t, domain.MessageAI, session.Messages[0].Type)
	assert.Equal(t, domain.MessageUser, session.Messages[1].Type)
	assert.Equal(t, domain.MessageAI, session.Messages[2].Type)
}

func TestSessionStore_GetReturnsDefensiveCopy(t *testing.T) {
	store := NewSessionStore()
	require.NoError(t, store.Add(testSession("sess-1")))

	copy1, ok := store.Get("sess-1")
	require.True(t, ok)
	copy1.Messages[0].Text = "mutated"
	copy1.Title = "mutated"

	copy2, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, "Opening question?", copy2.Messages[0].Text)
	assert.Equal(t, "Backend Engineer Interview", copy2.Title)
}

func TestSessionStore_AddClonesInput(t *testing.T) {
	store := NewSessionStore()
	session := testSession("sess-1")
	require.NoError(t, store.Add(session))

	session.Messages[0].Text = "mutated after add"

	stored, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, "Opening question?", stored.Messages[0].Text)
}
