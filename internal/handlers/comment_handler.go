package handlers

import (
	"fmt"
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, notificationRepo repositories.NotificationRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		postRepository:         postRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetComments)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment adds a comment (or threaded reply) to a post and notifies the
// post's author.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID := currentUserID(c)
	comment := &models.Comment{
		PostID:          postID,
		UserID:          actorID,
		Content:         sanitizeContent(req.Content),
		ParentCommentID: req.ParentCommentID,
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return repoError(err, "Post or parent comment not found")
	}

	if view, err := h.postRepository.GetPostByID(postID, actorID); err == nil && view.UserID != actorID {
		notification := &models.Notification{
			UserID:    view.UserID,
			Content:   fmt.Sprintf("%s commented on your post", claimsUsername(c)),
			Type:      models.NotificationPostComment,
			RelatedID: &postID,
		}
		if err := h.notificationRepository.CreateNotification(notification); err != nil {
			c.Logger().Errorf("failed to create comment notification: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments lists a post's comments in timestamp order
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	views, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

// DeleteComment deletes the authenticated user's own comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentRepository.DeleteComment(commentID, currentUserID(c)); err != nil {
		return repoError(err, "Comment not found")
	}
	return c.NoContent(http.StatusNoContent)
}
