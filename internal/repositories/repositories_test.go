//go:build integration
// +build integration

package repositories

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

// TestMain starts one PostgreSQL container for the whole package and tears it
// down afterwards. Individual tests call resetTables to start clean.
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("uisconnect_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Failed to get connection string: %v", err)
	}

	testDB, err = gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open gorm connection: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Friendship{},
		&models.Message{},
		&models.Notification{},
		&models.Hashtag{},
		&models.PostHashtag{},
		&models.SavedPost{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate test schema: %v", err)
	}

	code := m.Run()

	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate container: %v", err)
	}
	os.Exit(code)
}

// resetTables empties every table so tests do not leak state into each other.
func resetTables(t *testing.T) {
	t.Helper()
	err := testDB.Exec(`TRUNCATE users, user_settings, posts, comments, likes,
		friendships, messages, notifications, hashtags, post_hashtags, saved_posts
		RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err)
}

// createTestUser inserts a user with a real bcrypt digest for "password123".
func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@campus.test", username),
		Password: string(digest),
		Major:    "Computer Science",
		IsActive: true,
	}
	require.NoError(t, NewPostgresUserRepository(testDB).CreateUser(user))
	return user
}

// createTestPost inserts a post through the repository so hashtags are
// extracted like in production.
func createTestPost(t *testing.T, userID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Content: content, Visibility: models.VisibilityPublic}
	require.NoError(t, NewPostgresPostRepository(testDB).CreatePost(post))
	return post
}
