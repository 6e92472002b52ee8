package handlers

import (
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
)

// HashtagHandler serves trending tag queries
type HashtagHandler struct {
	hashtagRepository repositories.HashtagRepository
}

// NewHashtagHandler creates a new HashtagHandler
func NewHashtagHandler(hashtagRepo repositories.HashtagRepository) *HashtagHandler {
	return &HashtagHandler{hashtagRepository: hashtagRepo}
}

// RegisterHashtagRoutes registers hashtag-related routes
func (h *HashtagHandler) RegisterHashtagRoutes(g *echo.Group) {
	g.GET("/tags/trending", h.GetTrending)
	g.GET("/tags/counts", h.GetTagCounts)
}

// GetTrending returns the top tags by lifetime use count
func (h *HashtagHandler) GetTrending(c echo.Context) error {
	limit, _ := pagination(c, 10)
	tags, err := h.hashtagRepository.GetTrending(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tags)
}

// GetTagCounts returns tags with both the lifetime mention counter and the
// live count of posts still linking to them.
func (h *HashtagHandler) GetTagCounts(c echo.Context) error {
	limit, _ := pagination(c, 10)
	counts, err := h.hashtagRepository.GetTagCounts(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}
