package main

import (
	"log"

	api "aimeet-backend/cmd/api"
	summarydomain "aimeet-backend/internal/summary/domain"
	"aimeet-backend/pkg/config"
	"aimeet-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&summarydomain.SummaryRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize HTTP handler (dependency injection)
	handler := api.NewHandler(cfg, db)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
