package router

import (
	"log"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/handlers"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/middleware"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	// AutoMigrate models
	err := db.AutoMigrate(
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
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(db)
	savedPostRepo := repositories.NewPostgresSavedPostRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	hashtagRepo := repositories.NewPostgresHashtagRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.SessionLifetime)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo, cfg)
	userHandler.RegisterProfileRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(postRepo, hashtagRepo, cfg)
	feedHandler.RegisterFeedRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, commentRepo, notificationRepo)
	likeHandler.RegisterLikeRoutes(api)

	savedPostHandler := handlers.NewSavedPostHandler(savedPostRepo, postRepo)
	savedPostHandler.RegisterSavedPostRoutes(api)

	friendshipHandler := handlers.NewFriendshipHandler(friendshipRepo, userRepo, notificationRepo)
	friendshipHandler.RegisterFriendshipRoutes(api)

	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, notificationRepo, cfg)
	messageHandler.RegisterMessageRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	hashtagHandler := handlers.NewHashtagHandler(hashtagRepo)
	hashtagHandler.RegisterHashtagRoutes(api)

	uploadHandler := handlers.NewUploadHandler(cfg)
	uploadHandler.RegisterUploadRoutes(api)

	log.Println("All routes configured.")
}
