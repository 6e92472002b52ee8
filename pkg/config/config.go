package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the process reads from the environment. The data
// access layer never reaches for globals; the values are injected from here
// at startup.
type Config struct {
	Port            string
	Env             string
	PostgresURL     string
	JWTSecret       string
	SessionLifetime time.Duration

	UploadDir         string
	AllowedExtensions []string
	MaxUploadBytes    int64

	PostsPerPage    int
	UsersPerPage    int
	MessagesPerPage int
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresURL:     getEnv("POSTGRES_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-key-change-in-production"),
		SessionLifetime: getDurationEnv("SESSION_LIFETIME", 7*24*time.Hour),

		UploadDir:         getEnv("UPLOAD_DIR", "./static/uploads"),
		AllowedExtensions: getListEnv("ALLOWED_EXTENSIONS", []string{"png", "jpg", "jpeg", "gif", "webp"}),
		MaxUploadBytes:    getInt64Env("MAX_UPLOAD_BYTES", 16*1024*1024),

		PostsPerPage:    getIntEnv("POSTS_PER_PAGE", 20),
		UsersPerPage:    getIntEnv("USERS_PER_PAGE", 30),
		MessagesPerPage: getIntEnv("MESSAGES_PER_PAGE", 50),
	}
}

// ExtensionAllowed reports whether a filename extension (without the dot) is
// on the upload whitelist.
func (c *Config) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, strings.ToLower(trimmed))
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
