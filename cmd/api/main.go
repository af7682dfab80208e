package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/config"
	"github.com/ngodingskuyy/doctypes-go/db"
	"github.com/ngodingskuyy/doctypes-go/internal/api/middleware"
	"github.com/ngodingskuyy/doctypes-go/internal/api/routes"
	"github.com/ngodingskuyy/doctypes-go/internal/seed"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Apply optional doctype seed definitions
	if config.SeedFile != "" {
		if err := seed.ApplyFile(db.DB, config.SeedFile); err != nil {
			log.Fatalf("Failed to apply seed file: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
