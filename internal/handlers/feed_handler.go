package handlers

import (
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/pkg/config"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the enriched post listings
type FeedHandler struct {
	postRepository    repositories.PostRepository
	hashtagRepository repositories.HashtagRepository
	cfg               *config.Config
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, hashtagRepo repositories.HashtagRepository, cfg *config.Config) *FeedHandler {
	return &FeedHandler{
		postRepository:    postRepo,
		hashtagRepository: hashtagRepo,
		cfg:               cfg,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/users/:id/posts", h.GetUserPosts)
	g.GET("/saved-posts", h.GetSavedPosts)
	g.GET("/tags/:tag/posts", h.GetPostsByTag)
}

// GetFeed returns a page of the viewer's feed, pinned posts first then
// newest first. Supports an optional visibility filter.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	limit, offset := pagination(c, h.cfg.PostsPerPage)
	visibility := c.QueryParam("visibility")

	views, err := h.postRepository.GetFeed(currentUserID(c), limit, offset, visibility)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

// GetUserPosts lists one author's posts visible to the viewer
func (h *FeedHandler) GetUserPosts(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	limit, offset := pagination(c, h.cfg.PostsPerPage)
	views, err := h.postRepository.GetPostsByUser(userID, currentUserID(c), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

// GetSavedPosts lists the viewer's bookmarks, most recently saved first
func (h *FeedHandler) GetSavedPosts(c echo.Context) error {
	limit, offset := pagination(c, h.cfg.PostsPerPage)
	views, err := h.postRepository.GetSavedPosts(currentUserID(c), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

// GetPostsByTag lists posts mentioning a hashtag, newest first
func (h *FeedHandler) GetPostsByTag(c echo.Context) error {
	tag := c.Param("tag")
	if tag == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Tag is required")
	}

	limit, offset := pagination(c, h.cfg.PostsPerPage)
	views, err := h.hashtagRepository.GetPostsByTag(tag, currentUserID(c), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}
