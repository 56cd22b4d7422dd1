package main

import (
	"log"
	"os"

	"advisory-portal-backend/internal/api/routes"
	"advisory-portal-backend/internal/config"
	"advisory-portal-backend/internal/database"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/repository"
	"advisory-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	_ "advisory-portal-backend/docs" // This is needed for swag
)

//	@title			Advisory Portal Backend API
//	@version		1.0
//	@description	Backend API for tracking security advisory sheets: sheet distribution to teams, per-entry edit locking, team responses and submission tracking.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	publisher := notify.NewLogPublisher(logrus.WithField("component", "events"))

	// Initialize router
	router := routes.SetupRoutes(db, cfg, publisher)

	// Periodic sweep of expired entry locks. Expiry is also checked lazily
	// on every read, so the sweep is optional housekeeping.
	if cfg.LockSweepSchedule != "" {
		lockService := service.NewEntryLockService(
			repository.NewEntryLockRepository(db),
			repository.NewSheetRepository(db),
			repository.NewTeamSheetRepository(db),
			repository.NewSheetResponseRepository(db),
			repository.NewUserRepository(db),
			publisher,
			cfg.EntryLockTTL(),
		)
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.LockSweepSchedule, func() {
			released, err := lockService.ReleaseExpiredLocks()
			if err != nil {
				logrus.WithError(err).Error("expired lock sweep failed")
				return
			}
			if released > 0 {
				logrus.WithField("released", released).Info("released expired entry locks")
			}
		}); err != nil {
			logrus.Fatal("Invalid LOCK_SWEEP_SCHEDULE:", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
