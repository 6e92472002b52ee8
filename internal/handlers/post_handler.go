package handlers

import (
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.PUT("/posts/:id/pin", h.PinPost)
	g.DELETE("/posts/:id/pin", h.UnpinPost)
}

// CreatePost creates a post for the authenticated user. Hashtags in the
// content are extracted and linked by the post store.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		UserID:     currentUserID(c),
		Content:    sanitizeContent(req.Content),
		Type:       req.Type,
		Visibility: req.Visibility,
		ImagePath:  req.ImagePath,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves one post enriched for the viewer
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.postRepository.GetPostByID(postID, currentUserID(c))
	if err != nil {
		return repoError(err, "Post not found")
	}
	return c.JSON(http.StatusOK, view)
}

// UpdatePost edits the authenticated user's own post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.postRepository.UpdatePost(postID, currentUserID(c), sanitizeContent(req.Content), req.Type)
	if err != nil {
		return repoError(err, "Post not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// DeletePost deletes the authenticated user's own post with all its comments,
// likes, bookmarks and hashtag links.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postRepository.DeletePost(postID, currentUserID(c)); err != nil {
		return repoError(err, "Post not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// PinPost pins the authenticated user's own post to the top of listings
func (h *PostHandler) PinPost(c echo.Context) error {
	return h.setPinned(c, true)
}

// UnpinPost clears the pinned flag
func (h *PostHandler) UnpinPost(c echo.Context) error {
	return h.setPinned(c, false)
}

func (h *PostHandler) setPinned(c echo.Context, pinned bool) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postRepository.PinPost(postID, currentUserID(c), pinned); err != nil {
		return repoError(err, "Post not found")
	}
	return c.NoContent(http.StatusNoContent)
}
