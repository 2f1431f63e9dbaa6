package routes

import (
	"fmt"

	"compliance-portal-backend/internal/api/handlers"
	"compliance-portal-backend/internal/api/middleware"
	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/caching"
	"compliance-portal-backend/internal/config"
	"compliance-portal-backend/internal/database/models"
	"compliance-portal-backend/internal/repository"
	"compliance-portal-backend/internal/service"
	"compliance-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, cache caching.Cache, store storage.ObjectStore) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	subcontractorRepo := repository.NewSubcontractorRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	requirementRepo := repository.NewInsuranceRequirementRepository(db)
	templateRepo := repository.NewRequirementTemplateRepository(db)
	assignmentRepo := repository.NewProjectSubcontractorRepository(db)
	documentRepo := repository.NewCocDocumentRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	snapshotRepo := repository.NewComplianceSnapshotRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	tokenRepo := repository.NewIntegrationTokenRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, validator)
	userService := service.NewUserService(userRepo, companyRepo, validator)
	subcontractorService := service.NewSubcontractorService(subcontractorRepo, companyRepo, validator)
	projectService := service.NewProjectService(projectRepo, companyRepo, requirementRepo, templateRepo, validator)
	requirementService := service.NewRequirementService(requirementRepo, projectRepo, validator)
	templateService := service.NewTemplateService(templateRepo, companyRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, projectRepo, subcontractorRepo, validator)
	complianceService := service.NewComplianceService(assignmentRepo, snapshotRepo, companyRepo, cache)
	documentService := service.NewDocumentService(documentRepo, subcontractorRepo, projectRepo, store)
	verificationService := service.NewVerificationService(verificationRepo, documentRepo, assignmentRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, userRepo)
	graphService := service.NewGraphService(cfg)
	communicationService := service.NewCommunicationService(communicationRepo, subcontractorRepo, graphService, validator)
	auditService := service.NewAuditService(auditRepo)
	procoreService := service.NewProcoreService(cfg, tokenRepo, subcontractorRepo, projectRepo)
	stripeService := service.NewStripeService(cfg, companyRepo)

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg)
	if err := authConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth configuration: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, companyService, userService, authConfig)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cache)
	companyHandler := handlers.NewCompanyHandler(companyService, auditService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	subcontractorHandler := handlers.NewSubcontractorHandler(subcontractorService, auditService)
	projectHandler := handlers.NewProjectHandler(projectService, auditService)
	requirementHandler := handlers.NewRequirementHandler(requirementService, auditService)
	templateHandler := handlers.NewTemplateHandler(templateService, auditService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, complianceService, auditService)
	documentHandler := handlers.NewDocumentHandler(documentService, auditService)
	verificationHandler := handlers.NewVerificationHandler(verificationService, complianceService, documentService, auditService)
	complianceHandler := handlers.NewComplianceHandler(complianceService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	communicationHandler := handlers.NewCommunicationHandler(communicationService, auditService)
	auditHandler := handlers.NewAuditHandler(auditService)
	procoreHandler := handlers.NewProcoreHandler(procoreService, auditService)
	billingHandler := handlers.NewBillingHandler(stripeService, auditService)
	integrationHandler := handlers.NewIntegrationHandler(graphService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.Validate)
	}

	// Webhook and OAuth callback endpoints are called by external systems
	// and authenticate through their own mechanisms
	router.POST("/api/v1/billing/webhook", billingHandler.Webhook)
	router.GET("/api/v1/procore/callback", procoreHandler.Callback)

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", authHandler.Me)

		// Company routes
		company := v1.Group("/company")
		{
			company.GET("", companyHandler.GetCompany)
			company.PUT("", companyHandler.UpdateCompany)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.POST("/me/password", userHandler.ChangePassword)
			users.GET("", authMiddleware.RequireRole(models.UserRoleAdmin), userHandler.ListUsers)
			users.POST("", authMiddleware.RequireRole(models.UserRoleAdmin), userHandler.CreateUser)
			users.GET("/:id", authMiddleware.RequireRole(models.UserRoleAdmin), userHandler.GetUser)
			users.PUT("/:id", authMiddleware.RequireRole(models.UserRoleAdmin), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleAdmin), userHandler.DeleteUser)
		}

		// Subcontractor routes
		subcontractors := v1.Group("/subcontractors")
		{
			subcontractors.GET("", subcontractorHandler.ListSubcontractors)
			subcontractors.POST("", authMiddleware.RequireRole(models.UserRoleManager), subcontractorHandler.CreateSubcontractor)
			subcontractors.POST("/import", authMiddleware.RequireRole(models.UserRoleManager), subcontractorHandler.ImportSubcontractors)
			subcontractors.GET("/:id", subcontractorHandler.GetSubcontractor)
			subcontractors.PUT("/:id", authMiddleware.RequireRole(models.UserRoleManager), subcontractorHandler.UpdateSubcontractor)
			subcontractors.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleManager), subcontractorHandler.DeleteSubcontractor)
			subcontractors.GET("/:id/assignments", assignmentHandler.ListSubcontractorAssignments)
			subcontractors.GET("/:id/documents", documentHandler.ListSubcontractorDocuments)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", authMiddleware.RequireRole(models.UserRoleManager), projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", authMiddleware.RequireRole(models.UserRoleManager), projectHandler.UpdateProject)
			projects.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleManager), projectHandler.DeleteProject)
			projects.POST("/:id/apply-template", authMiddleware.RequireRole(models.UserRoleManager), projectHandler.ApplyTemplate)
			projects.GET("/:id/assignments", assignmentHandler.ListProjectAssignments)
			projects.GET("/:id/requirements", requirementHandler.ListProjectRequirements)
			projects.GET("/:id/documents", documentHandler.ListProjectDocuments)
		}

		// Requirement routes
		requirements := v1.Group("/requirements")
		{
			requirements.POST("", authMiddleware.RequireRole(models.UserRoleManager), requirementHandler.CreateRequirement)
			requirements.PUT("/:id", authMiddleware.RequireRole(models.UserRoleManager), requirementHandler.UpdateRequirement)
			requirements.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleManager), requirementHandler.DeleteRequirement)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", authMiddleware.RequireRole(models.UserRoleManager), templateHandler.CreateTemplate)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.PUT("/:id", authMiddleware.RequireRole(models.UserRoleManager), templateHandler.UpdateTemplate)
			templates.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleManager), templateHandler.DeleteTemplate)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", authMiddleware.RequireRole(models.UserRoleManager), assignmentHandler.AssignSubcontractor)
			assignments.PUT("/:id/status", authMiddleware.RequireRole(models.UserRoleManager), assignmentHandler.SetAssignmentStatus)
			assignments.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleManager), assignmentHandler.RemoveAssignment)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.POST("", authMiddleware.RequireRole(models.UserRoleManager), documentHandler.UploadDocument)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.GET("/:id/download", documentHandler.DownloadDocument)
			documents.DELETE("/:id", authMiddleware.RequireRole(models.UserRoleManager), documentHandler.DeleteDocument)
			documents.GET("/:id/verifications", verificationHandler.ListDocumentVerifications)
		}

		// Verification routes
		verifications := v1.Group("/verifications")
		{
			verifications.POST("", authMiddleware.RequireRole(models.UserRoleManager), verificationHandler.RecordVerification)
		}

		// Compliance routes
		compliance := v1.Group("/compliance")
		{
			compliance.GET("/summary", complianceHandler.GetSummary)
			compliance.GET("/trend", complianceHandler.GetTrend)
			compliance.POST("/recompute", authMiddleware.RequireRole(models.UserRoleManager), complianceHandler.Recompute)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		// Communication routes
		communications := v1.Group("/communications")
		{
			communications.GET("", communicationHandler.ListCommunications)
			communications.POST("", authMiddleware.RequireRole(models.UserRoleManager), communicationHandler.SendCommunication)
		}

		// Audit routes
		v1.GET("/audit-logs", authMiddleware.RequireRole(models.UserRoleAdmin), auditHandler.ListAuditLogs)

		// Procore integration routes
		procore := v1.Group("/procore")
		procore.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			procore.GET("/connect", procoreHandler.Connect)
			procore.GET("/status", procoreHandler.Status)
			procore.DELETE("/connection", procoreHandler.Disconnect)
			procore.POST("/sync/vendors", procoreHandler.SyncVendors)
			procore.POST("/sync/projects", procoreHandler.SyncProjects)
		}

		// Billing routes
		billing := v1.Group("/billing")
		billing.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			billing.POST("/checkout", billingHandler.CreateCheckout)
			billing.POST("/portal", billingHandler.CreatePortal)
		}

		// Integration routes
		integrations := v1.Group("/integrations")
		integrations.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			integrations.POST("/m365/test", integrationHandler.TestMailConnection)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
