package main

import (
	"net/http"
	"os"
	"time"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/api"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/config"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/database"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/engine"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/feeds"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/handler"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/logger"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Start the reconciliation engine
	eng := engine.NewEngine(engine.DefaultScore, cfg.ActivityFeedCap)
	defer eng.Close()
	handler.Engine = eng

	// Subscribe to both feeds
	watcher := feeds.NewWatcher(db, eng, cfg.DSN(), time.Duration(cfg.FeedRefreshSeconds)*time.Second)
	if err := watcher.Start(); err != nil {
		logger.Error("Feed watcher failed to start: %v", err)
		os.Exit(1)
	}
	defer watcher.Stop()

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	corsHandler := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
