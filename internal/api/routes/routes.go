package routes

import (
	"advisory-portal-backend/internal/api/handlers"
	"advisory-portal-backend/internal/api/middleware"
	"advisory-portal-backend/internal/auth"
	"advisory-portal-backend/internal/config"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/repository"
	"advisory-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, publisher notify.Publisher) *gin.Engine {
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
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	sheetRepo := repository.NewSheetRepository(db)
	teamSheetRepo := repository.NewTeamSheetRepository(db)
	responseRepo := repository.NewSheetResponseRepository(db)
	lockRepo := repository.NewEntryLockRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, validator)
	userService := service.NewUserService(userRepo, teamRepo, validator)
	sheetService := service.NewSheetService(sheetRepo, teamRepo, teamSheetRepo, responseRepo, validator)
	lockService := service.NewEntryLockService(lockRepo, sheetRepo, teamSheetRepo, responseRepo, userRepo, publisher, cfg.EntryLockTTL())
	responseService := service.NewTeamResponseService(responseRepo, teamSheetRepo, sheetRepo, lockRepo, userRepo, publisher, validator)
	submissionService := service.NewSubmissionService(db, teamSheetRepo, responseRepo, sheetRepo, lockRepo, userRepo, publisher)
	progressService := service.NewProgressService(sheetRepo, teamSheetRepo, responseRepo, lockRepo)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry())
	authHandlers := auth.NewAuthHandlers(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)
	sheetHandler := handlers.NewSheetHandler(sheetService, submissionService)
	lockHandler := handlers.NewEntryLockHandler(lockService)
	responseHandler := handlers.NewTeamResponseHandler(responseService)
	adminHandler := handlers.NewAdminHandler(progressService, submissionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandlers.Login)
		authGroup.GET("/validate", authHandlers.Validate)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandlers.Me)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Entry locking routes
		entryLocking := v1.Group("/entry-locking")
		{
			entryLocking.POST("/:entryId/lock", lockHandler.LockEntry)
			entryLocking.POST("/:entryId/unlock", lockHandler.UnlockEntry)
			entryLocking.PUT("/:entryId/draft", responseHandler.SaveDraftByEntry)
			entryLocking.PUT("/:entryId/complete", responseHandler.CompleteEntry)
			entryLocking.GET("/sheets/:sheetId/available", lockHandler.GetAvailableEntries)
			entryLocking.POST("/release-expired", authMiddleware.RequireAdmin(), lockHandler.ReleaseExpiredLocks)
		}

		// Team response routes
		teamResponses := v1.Group("/team-responses")
		{
			teamResponses.PUT("/:responseId/draft", responseHandler.SaveDraft)
			teamResponses.PUT("/:responseId/status-comments", responseHandler.UpdateStatusAndComments)
		}

		// Sheet routes
		sheets := v1.Group("/sheets")
		{
			sheets.GET("", sheetHandler.ListSheets)
			sheets.GET("/:sheetId", sheetHandler.GetSheet)
			sheets.POST("/:sheetId/start", sheetHandler.StartSheet)
			sheets.POST("/:sheetId/submit", sheetHandler.SubmitSheet)
			sheets.POST("", authMiddleware.RequireAdmin(), sheetHandler.CreateSheet)
			sheets.POST("/:sheetId/distribute", authMiddleware.RequireAdmin(), sheetHandler.DistributeSheet)
			sheets.GET("/:sheetId/assignments", authMiddleware.RequireAdmin(), sheetHandler.GetSheetAssignments)
		}

		// Caller team's assignments
		v1.GET("/assignments", sheetHandler.GetMyAssignments)

		// Admin aggregation routes
		admin := v1.Group("/admin", authMiddleware.RequireAdmin())
		{
			admin.GET("/sheets/:sheetId/progress", adminHandler.GetSheetProgress)
			admin.GET("/sheets/:sheetId/teams/:teamId/progress", adminHandler.GetTeamProgress)
			admin.PUT("/sheets/:sheetId/teams/:teamId/unlock", adminHandler.ReopenAssignment)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", authMiddleware.RequireAdmin(), teamHandler.CreateTeam)
			teams.PUT("/:id", authMiddleware.RequireAdmin(), teamHandler.UpdateTeam)
			teams.DELETE("/:id", authMiddleware.RequireAdmin(), teamHandler.DeleteTeam)
		}

		// User routes (admin only)
		users := v1.Group("/users", authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
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

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
