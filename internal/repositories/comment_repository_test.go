//go:build integration
// +build integration

package repositories

import (
	"testing"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	resetTables(t)
	repo := NewPostgresCommentRepository(testDB)
	author := createTestUser(t, "odin01")
	reader := createTestUser(t, "kellys")
	post := createTestPost(t, author.ID, "comment here")

	comment := &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "first!"}
	require.NoError(t, repo.CreateComment(comment))
	assert.NotZero(t, comment.ID)

	// Commenting on a missing post fails.
	orphan := &models.Comment{PostID: post.ID + 99, UserID: reader.ID, Content: "into the void"}
	assert.ErrorIs(t, repo.CreateComment(orphan), ErrNotFound)
}

func TestCreateReplyParentMustBeOnSamePost(t *testing.T) {
	resetTables(t)
	repo := NewPostgresCommentRepository(testDB)
	author := createTestUser(t, "odin01")
	postA := createTestPost(t, author.ID, "post a")
	postB := createTestPost(t, author.ID, "post b")

	parent := &models.Comment{PostID: postA.ID, UserID: author.ID, Content: "parent"}
	require.NoError(t, repo.CreateComment(parent))

	reply := &models.Comment{PostID: postA.ID, UserID: author.ID, Content: "reply", ParentCommentID: &parent.ID}
	require.NoError(t, repo.CreateComment(reply))

	// A parent living on another post is rejected.
	crossPost := &models.Comment{PostID: postB.ID, UserID: author.ID, Content: "wrong thread", ParentCommentID: &parent.ID}
	assert.ErrorIs(t, repo.CreateComment(crossPost), ErrNotFound)

	missing := uint(9999)
	noParent := &models.Comment{PostID: postA.ID, UserID: author.ID, Content: "no parent", ParentCommentID: &missing}
	assert.ErrorIs(t, repo.CreateComment(noParent), ErrNotFound)
}

func TestGetCommentsByPostIDEnriched(t *testing.T) {
	resetTables(t)
	commentRepo := NewPostgresCommentRepository(testDB)
	likeRepo := NewPostgresLikeRepository(testDB)
	author := createTestUser(t, "odin01")
	reader := createTestUser(t, "kellys")
	post := createTestPost(t, author.ID, "busy thread")

	first := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "older"}
	require.NoError(t, commentRepo.CreateComment(first))
	second := &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "newer"}
	require.NoError(t, commentRepo.CreateComment(second))

	_, err := likeRepo.ToggleCommentLike(first.ID, reader.ID)
	require.NoError(t, err)

	views, err := commentRepo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Oldest first, each carrying its author and like count.
	assert.Equal(t, "older", views[0].Content)
	assert.Equal(t, "odin01", views[0].AuthorUsername)
	assert.EqualValues(t, 1, views[0].LikeCount)
	assert.Equal(t, "newer", views[1].Content)
	assert.Equal(t, "kellys", views[1].AuthorUsername)
	assert.EqualValues(t, 0, views[1].LikeCount)
}

func TestDeleteCommentCascadesReplies(t *testing.T) {
	resetTables(t)
	commentRepo := NewPostgresCommentRepository(testDB)
	likeRepo := NewPostgresLikeRepository(testDB)
	author := createTestUser(t, "odin01")
	reader := createTestUser(t, "kellys")
	post := createTestPost(t, author.ID, "thread root")

	parent := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "parent"}
	require.NoError(t, commentRepo.CreateComment(parent))
	reply := &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "reply"}
	reply.ParentCommentID = &parent.ID
	require.NoError(t, commentRepo.CreateComment(reply))
	_, err := likeRepo.ToggleCommentLike(reply.ID, author.ID)
	require.NoError(t, err)

	// Only the author may delete.
	assert.ErrorIs(t, commentRepo.DeleteComment(parent.ID, reader.ID), ErrForbidden)

	require.NoError(t, commentRepo.DeleteComment(parent.ID, author.ID))

	views, err := commentRepo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, views)

	var likeCount int64
	testDB.Model(&models.Like{}).Count(&likeCount)
	assert.Zero(t, likeCount)

	assert.ErrorIs(t, commentRepo.DeleteComment(parent.ID, author.ID), ErrNotFound)
}

func TestDeleteCommentCascadesNestedReplies(t *testing.T) {
	resetTables(t)
	commentRepo := NewPostgresCommentRepository(testDB)
	likeRepo := NewPostgresLikeRepository(testDB)
	author := createTestUser(t, "odin01")
	reader := createTestUser(t, "kellys")
	post := createTestPost(t, author.ID, "deep thread")

	parent := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "parent"}
	require.NoError(t, commentRepo.CreateComment(parent))
	child := &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "child", ParentCommentID: &parent.ID}
	require.NoError(t, commentRepo.CreateComment(child))
	grandchild := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "grandchild", ParentCommentID: &child.ID}
	require.NoError(t, commentRepo.CreateComment(grandchild))
	_, err := likeRepo.ToggleCommentLike(grandchild.ID, reader.ID)
	require.NoError(t, err)

	// An unrelated comment on the same post survives.
	sibling := &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "sibling"}
	require.NoError(t, commentRepo.CreateComment(sibling))

	require.NoError(t, commentRepo.DeleteComment(parent.ID, author.ID))

	views, err := commentRepo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "sibling", views[0].Content)

	var likeCount int64
	testDB.Model(&models.Like{}).Count(&likeCount)
	assert.Zero(t, likeCount)
}
