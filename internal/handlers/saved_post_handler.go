package handlers

import (
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SavedPostHandler handles bookmark toggling
type SavedPostHandler struct {
	savedPostRepository repositories.SavedPostRepository
	postRepository      repositories.PostRepository
}

// NewSavedPostHandler creates a new SavedPostHandler
func NewSavedPostHandler(savedPostRepo repositories.SavedPostRepository, postRepo repositories.PostRepository) *SavedPostHandler {
	return &SavedPostHandler{savedPostRepository: savedPostRepo, postRepository: postRepo}
}

// RegisterSavedPostRoutes registers bookmark-related routes
func (h *SavedPostHandler) RegisterSavedPostRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/save", h.ToggleSave)
	g.GET("/posts/:post_id/save", h.GetSaveStatus)
}

// ToggleSave flips the viewer's bookmark on a post and reports the resulting
// state.
func (h *SavedPostHandler) ToggleSave(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	actorID := currentUserID(c)
	if _, err := h.postRepository.GetPostByID(postID, actorID); err != nil {
		return repoError(err, "Post not found")
	}

	saved, err := h.savedPostRepository.ToggleSave(actorID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "saved": saved})
}

// GetSaveStatus reports whether the viewer has bookmarked a post
func (h *SavedPostHandler) GetSaveStatus(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	saved, err := h.savedPostRepository.IsPostSaved(currentUserID(c), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "saved": saved})
}
