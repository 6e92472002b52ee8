package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 20, cfg.PostsPerPage)
	assert.Equal(t, 30, cfg.UsersPerPage)
	assert.Equal(t, 50, cfg.MessagesPerPage)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif", "webp"}, cfg.AllowedExtensions)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POSTS_PER_PAGE", "5")
	t.Setenv("SESSION_LIFETIME", "24h")
	t.Setenv("ALLOWED_EXTENSIONS", "PNG, jpg")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.PostsPerPage)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, []string{"png", "jpg"}, cfg.AllowedExtensions)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("POSTS_PER_PAGE", "not-a-number")
	t.Setenv("SESSION_LIFETIME", "soon")

	cfg := Load()

	assert.Equal(t, 20, cfg.PostsPerPage)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionLifetime)
}

func TestExtensionAllowed(t *testing.T) {
	cfg := Load()

	assert.True(t, cfg.ExtensionAllowed("png"))
	assert.True(t, cfg.ExtensionAllowed(".JPG"))
	assert.False(t, cfg.ExtensionAllowed("exe"))
	assert.False(t, cfg.ExtensionAllowed(""))
}
