package handlers

import (
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/pkg/config"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	cfg            *config.Config
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, cfg *config.Config) *UserHandler {
	return &UserHandler{userRepository: userRepo, cfg: cfg}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.DELETE("/profile", h.DeactivateAccount)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(currentUserID(c))
	if err != nil {
		return repoError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser retrieves another user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return repoError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies whitelisted profile changes for the authenticated
// user. Unknown fields are dropped by the repository, not rejected.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.Major != nil {
		fields["major"] = *req.Major
	}
	if req.Interests != nil {
		fields["interests"] = *req.Interests
	}
	if req.Bio != nil {
		fields["bio"] = sanitizeContent(*req.Bio)
	}
	if req.StudyLevel != nil {
		fields["study_level"] = *req.StudyLevel
	}
	if req.Campus != nil {
		fields["campus"] = *req.Campus
	}
	if req.ProfilePicture != nil {
		fields["profile_picture"] = *req.ProfilePicture
	}

	updated, err := h.userRepository.UpdateProfile(currentUserID(c), fields)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"updated": updated})
}

// DeactivateAccount soft-disables the authenticated user's account. Posts and
// messages keep their owner; the account simply stops authenticating.
func (h *UserHandler) DeactivateAccount(c echo.Context) error {
	if err := h.userRepository.DeactivateUser(currentUserID(c)); err != nil {
		return repoError(err, "User profile not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchUsers searches users by username, major or interests
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	limit, _ := pagination(c, h.cfg.UsersPerPage)
	users, err := h.userRepository.SearchUsers(query, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// GetSettings returns the authenticated user's preferences
func (h *UserHandler) GetSettings(c echo.Context) error {
	settings, err := h.userRepository.GetSettings(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies preference changes
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	var req models.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	settings, err := h.userRepository.UpdateSettings(currentUserID(c), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, settings)
}
