package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"onboarding-backend/pkg/api"
	"onboarding-backend/pkg/clients/brevo"
	"onboarding-backend/pkg/clients/sheets"
	"onboarding-backend/pkg/config"
	"onboarding-backend/pkg/logger"
	"onboarding-backend/pkg/middleware"
	"onboarding-backend/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	// Initialize API clients
	key, err := os.ReadFile(cfg.ServiceAccountFile)
	if err != nil {
		zlog.Fatal("error reading service account key", zap.Error(err))
	}
	sheetsClient, err := sheets.NewClient(key, cfg.SpreadsheetID)
	if err != nil {
		zlog.Fatal("error creating sheets client", zap.Error(err))
	}
	brevoClient := brevo.NewClient(cfg.BrevoAPIKey, cfg.SenderEmail, cfg.SenderName)

	// Initialize services
	submissionService := services.NewSubmissionService(sheetsClient, brevoClient, cfg, zlog)
	dashboardService := services.NewDashboardService(sheetsClient, cfg, zlog)
	sessions := services.NewMemorySessionStore(cfg.DashboardPassword, cfg.SessionTTL)

	// Set Gin to release mode in production
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create a new Gin router with default middleware
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Initialize handlers and register routes
	handlers := api.NewHandlers(submissionService, dashboardService, sessions, zlog)
	api.RegisterRoutes(router, handlers, sessions)

	// Start the server
	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("error starting server", zap.Error(err))
	}
}
