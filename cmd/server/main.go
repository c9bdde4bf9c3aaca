package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mergington-high/activity-directory/internal/config"
	"github.com/mergington-high/activity-directory/internal/database"
	"github.com/mergington-high/activity-directory/internal/handlers"
	"github.com/mergington-high/activity-directory/internal/seed"
	"github.com/mergington-high/activity-directory/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	activityStore := store.New(db)

	// Seed the activity catalog
	if err := seed.Run(activityStore); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize Handlers
	activityHandler := handlers.NewActivityHandler(activityStore)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg.StaticDir, activityHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
