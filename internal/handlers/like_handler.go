package handlers

import (
	"fmt"
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	postRepository         repositories.PostRepository
	commentRepository      repositories.CommentRepository
	notificationRepository repositories.NotificationRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, notificationRepo repositories.NotificationRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		postRepository:         postRepo,
		commentRepository:      commentRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.TogglePostLike)
	g.POST("/comments/:comment_id/like", h.ToggleCommentLike)
	g.GET("/posts/:post_id/likes/count", h.GetPostLikeCount)
}

// TogglePostLike flips the viewer's like on a post and reports the resulting
// state. Liking notifies the post's author.
func (h *LikeHandler) TogglePostLike(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	actorID := currentUserID(c)
	view, err := h.postRepository.GetPostByID(postID, actorID)
	if err != nil {
		return repoError(err, "Post not found")
	}

	liked, err := h.likeRepository.TogglePostLike(postID, actorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked && view.UserID != actorID {
		notification := &models.Notification{
			UserID:    view.UserID,
			Content:   fmt.Sprintf("%s liked your post", claimsUsername(c)),
			Type:      models.NotificationPostLike,
			RelatedID: &postID,
		}
		if err := h.notificationRepository.CreateNotification(notification); err != nil {
			c.Logger().Errorf("failed to create like notification: %v", err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liked": liked})
}

// ToggleCommentLike flips the viewer's like on a comment
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	if _, err := h.commentRepository.GetCommentByID(commentID); err != nil {
		return repoError(err, "Comment not found")
	}

	liked, err := h.likeRepository.ToggleCommentLike(commentID, currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"comment_id": commentID, "liked": liked})
}

// GetPostLikeCount returns the number of likes on a post
func (h *LikeHandler) GetPostLikeCount(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	count, err := h.likeRepository.CountPostLikes(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "like_count": count})
}
