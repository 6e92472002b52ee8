//go:build integration
// +build integration

package repositories

import (
	"testing"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogglePostLikeTwice(t *testing.T) {
	resetTables(t)
	likeRepo := NewPostgresLikeRepository(testDB)
	author := createTestUser(t, "odin01")
	viewer := createTestUser(t, "kellys")
	post := createTestPost(t, author.ID, "toggle me")

	before, err := likeRepo.CountPostLikes(post.ID)
	require.NoError(t, err)

	liked, err := likeRepo.TogglePostLike(post.ID, viewer.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := likeRepo.CountPostLikes(post.ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, count)

	hasLiked, err := likeRepo.HasUserLikedPost(post.ID, viewer.ID)
	require.NoError(t, err)
	assert.True(t, hasLiked)

	liked, err = likeRepo.TogglePostLike(post.ID, viewer.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = likeRepo.CountPostLikes(post.ID)
	require.NoError(t, err)
	assert.Equal(t, before, count)
}

func TestToggleCommentLike(t *testing.T) {
	resetTables(t)
	likeRepo := NewPostgresLikeRepository(testDB)
	commentRepo := NewPostgresCommentRepository(testDB)
	author := createTestUser(t, "odin01")
	post := createTestPost(t, author.ID, "commented post")

	comment := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "self reply"}
	require.NoError(t, commentRepo.CreateComment(comment))

	liked, err := likeRepo.ToggleCommentLike(comment.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := likeRepo.CountCommentLikes(comment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	liked, err = likeRepo.ToggleCommentLike(comment.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleSaveTwice(t *testing.T) {
	resetTables(t)
	savedRepo := NewPostgresSavedPostRepository(testDB)
	author := createTestUser(t, "odin01")
	viewer := createTestUser(t, "kellys")
	post := createTestPost(t, author.ID, "bookmark me")

	saved, err := savedRepo.ToggleSave(viewer.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	isSaved, err := savedRepo.IsPostSaved(viewer.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, isSaved)

	saved, err = savedRepo.ToggleSave(viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	isSaved, err = savedRepo.IsPostSaved(viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, isSaved)
}
