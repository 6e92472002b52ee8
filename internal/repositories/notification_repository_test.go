//go:build integration
// +build integration

package repositories

import (
	"testing"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsNewestFirst(t *testing.T) {
	resetTables(t)
	repo := NewPostgresNotificationRepository(testDB)
	user := createTestUser(t, "odin01")

	require.NoError(t, repo.CreateNotification(&models.Notification{
		UserID: user.ID, Type: models.NotificationPostLike, Content: "kellys liked your post",
	}))
	require.NoError(t, repo.CreateNotification(&models.Notification{
		UserID: user.ID, Type: models.NotificationFriendRequest, Content: "max123 sent you a friend request",
	}))

	notifications, err := repo.GetByUserID(user.ID, 20, false)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, models.NotificationFriendRequest, notifications[0].Type)
	assert.Equal(t, models.NotificationPostLike, notifications[1].Type)
	assert.False(t, notifications[0].IsRead)
}

func TestNotificationsUnreadFilterAndCount(t *testing.T) {
	resetTables(t)
	repo := NewPostgresNotificationRepository(testDB)
	user := createTestUser(t, "odin01")
	other := createTestUser(t, "kellys")

	require.NoError(t, repo.CreateNotification(&models.Notification{
		UserID: user.ID, Type: models.NotificationPostComment, Content: "kellys commented on your post",
	}))
	require.NoError(t, repo.CreateNotification(&models.Notification{
		UserID: user.ID, Type: models.NotificationMessage, Content: "new message from kellys",
	}))
	require.NoError(t, repo.CreateNotification(&models.Notification{
		UserID: other.ID, Type: models.NotificationMessage, Content: "not yours",
	}))

	count, err := repo.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	unread, err := repo.GetByUserID(user.ID, 20, true)
	require.NoError(t, err)
	require.Len(t, unread, 2)

	// Another user cannot mark it read.
	assert.ErrorIs(t, repo.MarkAsRead(unread[0].ID, other.ID), ErrNotFound)

	require.NoError(t, repo.MarkAsRead(unread[0].ID, user.ID))

	unread, err = repo.GetByUserID(user.ID, 20, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	count, err = repo.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// The other user's notifications are untouched.
	count, err = repo.GetUnreadCount(other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMarkAllAsRead(t *testing.T) {
	resetTables(t)
	repo := NewPostgresNotificationRepository(testDB)
	user := createTestUser(t, "odin01")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateNotification(&models.Notification{
			UserID: user.ID, Type: models.NotificationPostLike, Content: "someone liked your post",
		}))
	}

	require.NoError(t, repo.MarkAllAsRead(user.ID))

	count, err := repo.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Everything is still listed, just read.
	notifications, err := repo.GetByUserID(user.ID, 20, false)
	require.NoError(t, err)
	assert.Len(t, notifications, 3)
}

func TestMarkAsReadMissing(t *testing.T) {
	resetTables(t)
	repo := NewPostgresNotificationRepository(testDB)
	user := createTestUser(t, "odin01")

	assert.ErrorIs(t, repo.MarkAsRead(424242, user.ID), ErrNotFound)
}
