package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy strips unsafe markup from user-generated content before it is
// stored.
var ugcPolicy = bluemonday.UGCPolicy()

func sanitizeContent(content string) string {
	return ugcPolicy.Sanitize(content)
}

// currentUserID returns the authenticated user's ID from the JWT claims the
// auth middleware stored in the context.
func currentUserID(c echo.Context) uint {
	claims := c.Get("user").(*models.JwtCustomClaims)
	return claims.UserID
}

// claimsUsername returns the authenticated user's username from the JWT
// claims, used to compose notification messages.
func claimsUsername(c echo.Context) string {
	claims := c.Get("user").(*models.JwtCustomClaims)
	return claims.Username
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// pagination reads limit/offset query parameters, falling back to the
// configured page size.
func pagination(c echo.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// repoError maps data-access sentinel errors to HTTP errors.
func repoError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repositories.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this resource")
	case errors.Is(err, repositories.ErrDuplicate):
		return echo.NewHTTPError(http.StatusConflict, "Resource already exists")
	case errors.Is(err, repositories.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status value")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
