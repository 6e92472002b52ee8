//go:build integration
// +build integration

package repositories

import (
	"testing"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendTestMessage(t *testing.T, repo MessageRepository, from, to uint, content string) *models.Message {
	t.Helper()
	message := &models.Message{SenderID: from, ReceiverID: to, Content: content}
	require.NoError(t, repo.SendMessage(message))
	return message
}

func TestConversationMergesBothDirections(t *testing.T) {
	resetTables(t)
	repo := NewPostgresMessageRepository(testDB)
	a := createTestUser(t, "odin01")
	b := createTestUser(t, "kellys")
	c := createTestUser(t, "max123")

	sendTestMessage(t, repo, a.ID, b.ID, "hi")
	sendTestMessage(t, repo, b.ID, a.ID, "hello back")
	sendTestMessage(t, repo, a.ID, c.ID, "unrelated thread")

	messages, err := repo.GetConversation(a.ID, b.ID, 50)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hello back", messages[0].Content)
	assert.Equal(t, "hi", messages[1].Content)
}

func TestConversationSummariesAndUnread(t *testing.T) {
	resetTables(t)
	repo := NewPostgresMessageRepository(testDB)
	a := createTestUser(t, "odin01")
	b := createTestUser(t, "kellys")

	sendTestMessage(t, repo, a.ID, b.ID, "hi")

	summaries, err := repo.GetConversations(b.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, a.ID, summaries[0].OtherUserID)
	assert.Equal(t, "odin01", summaries[0].OtherUsername)
	assert.Equal(t, "hi", summaries[0].LastContent)
	assert.EqualValues(t, 1, summaries[0].UnreadCount)

	unread, err := repo.CountUnread(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	// The sender's own conversation carries no unread messages.
	summaries, err = repo.GetConversations(a.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 0, summaries[0].UnreadCount)

	require.NoError(t, repo.MarkConversationRead(b.ID, a.ID))

	summaries, err = repo.GetConversations(b.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 0, summaries[0].UnreadCount)

	unread, err = repo.CountUnread(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)
}

func TestConversationSummariesOrderedByRecency(t *testing.T) {
	resetTables(t)
	repo := NewPostgresMessageRepository(testDB)
	a := createTestUser(t, "odin01")
	b := createTestUser(t, "kellys")
	c := createTestUser(t, "max123")

	sendTestMessage(t, repo, b.ID, a.ID, "older thread")
	sendTestMessage(t, repo, c.ID, a.ID, "newer thread")

	summaries, err := repo.GetConversations(a.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, c.ID, summaries[0].OtherUserID)
	assert.Equal(t, b.ID, summaries[1].OtherUserID)
}

func TestMarkConversationReadScopedToSender(t *testing.T) {
	resetTables(t)
	repo := NewPostgresMessageRepository(testDB)
	a := createTestUser(t, "odin01")
	b := createTestUser(t, "kellys")
	c := createTestUser(t, "max123")

	sendTestMessage(t, repo, b.ID, a.ID, "from b")
	sendTestMessage(t, repo, c.ID, a.ID, "from c")

	require.NoError(t, repo.MarkConversationRead(a.ID, b.ID))

	unread, err := repo.CountUnread(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)
}
