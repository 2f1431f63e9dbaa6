package main

import (
	"context"
	"log"
	"os"

	"compliance-portal-backend/internal/api/routes"
	"compliance-portal-backend/internal/caching"
	"compliance-portal-backend/internal/config"
	"compliance-portal-backend/internal/database"
	"compliance-portal-backend/internal/jobs"
	"compliance-portal-backend/internal/repository"
	"compliance-portal-backend/internal/service"
	"compliance-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "compliance-portal-backend/docs" // This is needed for swag
)

//	@title			Compliance Portal Backend API
//	@version		1.0
//	@description	Backend API for managing subcontractor insurance compliance: companies, projects, Certificates of Currency, verification outcomes, and compliance reporting.

//	@contact.name	API Support
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

	// Initialize cache
	cache := caching.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cache.Close()

	// Initialize object storage
	store, err := storage.NewMinioStore(cfg.StorageEndpoint, cfg.StorageAccessKey, cfg.StorageSecretKey, cfg.StorageBucket, cfg.StorageUseSSL)
	if err != nil {
		logrus.Fatal("Failed to initialize object storage:", err)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		logrus.Fatal("Failed to ensure storage bucket:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, cache, store)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start background jobs
	if cfg.JobsEnabled {
		scheduler, err := buildScheduler(db, cfg, cache)
		if err != nil {
			logrus.Fatal("Failed to initialize job scheduler:", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				logrus.WithError(err).Error("Failed to stop job scheduler")
			}
		}()
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

// buildScheduler wires the repositories and services the background jobs need
func buildScheduler(db *gorm.DB, cfg *config.Config, cache caching.Cache) (*jobs.Scheduler, error) {
	validate := validator.New()

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	subcontractorRepo := repository.NewSubcontractorRepository(db)
	assignmentRepo := repository.NewProjectSubcontractorRepository(db)
	documentRepo := repository.NewCocDocumentRepository(db)
	snapshotRepo := repository.NewComplianceSnapshotRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)

	complianceService := service.NewComplianceService(assignmentRepo, snapshotRepo, companyRepo, cache)
	notificationService := service.NewNotificationService(notificationRepo, userRepo)
	graphService := service.NewGraphService(cfg)
	communicationService := service.NewCommunicationService(communicationRepo, subcontractorRepo, graphService, validate)

	return jobs.New(companyRepo, documentRepo, assignmentRepo, complianceService, notificationService, communicationService)
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
