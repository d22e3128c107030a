package main

import (
	"net/http"

	"price-tracker/internal/alerts"
	"price-tracker/internal/api"
	"price-tracker/internal/config"
	"price-tracker/internal/database"
	"price-tracker/internal/feed"
	"price-tracker/internal/logger"
	"price-tracker/internal/middleware"
	"price-tracker/internal/notify"
	"price-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables; no .env file is fine in production
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.WithComponent("main")

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		log.Info().Msg("telegram notifications enabled")
	} else {
		log.Warn().Msg("telegram not configured, notifications will be no-ops")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Wire the evaluation engine to its collaborators
	store := storage.New(db)
	notifier := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	engine := alerts.NewEngine(store, notifier)
	hub := feed.NewHub()

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "price-tracker"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live price feed for the companion client
	r.GET("/ws/prices", func(c *gin.Context) {
		if err := hub.Subscribe(c.Writer, c.Request); err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
		}
	})

	// API routes
	apiGroup := r.Group("/api/v1")
	api.SetupRoutes(apiGroup, db, engine, hub, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
