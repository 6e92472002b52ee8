package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/pkg/config"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UploadHandler stores image uploads for posts and profile pictures
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// RegisterUploadRoutes registers upload-related routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.UploadImage)
}

// UploadImage accepts a multipart image, checks it against the configured
// extension whitelist and size limit, and stores it under a random filename.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file field")
	}

	if fileHeader.Size > h.cfg.MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File too large")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !h.cfg.ExtensionAllowed(ext) {
		return echo.NewHTTPError(http.StatusBadRequest, "File type not allowed")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read upload")
	}
	defer src.Close()

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to prepare upload directory")
	}

	name := uuid.New().String() + ext
	dstPath := filepath.Join(h.cfg.UploadDir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store upload")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store upload")
	}

	return c.JSON(http.StatusCreated, echo.Map{"path": name})
}
