package main

import (
	"log"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/router"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/pkg/config"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
