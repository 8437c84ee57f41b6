package routes

import (
	"log"

	"equipment-assignment-backend/internal/api/handlers"
	"equipment-assignment-backend/internal/api/middleware"
	"equipment-assignment-backend/internal/auth"
	"equipment-assignment-backend/internal/config"
	"equipment-assignment-backend/internal/repository"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
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
	requestRepo := repository.NewRequestRepository(db)
	recordRepo := repository.NewFulfillmentRecordRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	unitRepo := repository.NewOperativeUnitRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Initialize services
	ledgerService := service.NewLedgerService(requestRepo, recordRepo, assetRepo, unitRepo, categoryRepo, validator)
	assetService := service.NewAssetService(assetRepo, validator)
	unitService := service.NewOperativeUnitService(unitRepo, validator)
	categoryService := service.NewCategoryService(categoryRepo, validator)
	settingsService := service.NewSettingsService(settingRepo, cfg, validator)
	reportService := service.NewReportService(ledgerService)
	notifierService := service.NewNotifierService(cfg, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig(cfg.JWTSecret)
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authHandlers *auth.AuthHandlers
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, settingsService)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandlers = auth.NewAuthHandlers(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	requestHandler := handlers.NewRequestHandler(ledgerService)
	assetHandler := handlers.NewAssetHandler(assetService)
	unitHandler := handlers.NewOperativeUnitHandler(unitService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notifierService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandlers != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/login", authHandlers.Login)
			if authMiddleware != nil {
				authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandlers.Validate)
			}
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Request and ledger routes
		requests := v1.Group("/requests")
		{
			requests.POST("", requestHandler.CreateRequest)
			requests.GET("/:id", requestHandler.GetRequest)
			requests.POST("/:id/assign/owned", requestHandler.AssignOwned)
			requests.POST("/:id/assign/rental", requestHandler.AssignRental)
			requests.POST("/:id/assign/purchase", requestHandler.AssignPurchase)
			requests.POST("/:id/complete", requestHandler.MarkCompleted)
			requests.POST("/:id/reopen", requestHandler.RevertCompleted)
		}

		// Flattened dashboard rows
		rows := v1.Group("/rows")
		{
			rows.GET("", requestHandler.ListRows)
			rows.PATCH("/:id", requestHandler.EditRow)
			rows.DELETE("/:id", requestHandler.DeleteRow)
		}

		// Asset routes
		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.ListAssets)
			assets.POST("", assetHandler.CreateAsset)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PATCH("/:id", assetHandler.UpdateAsset)
			assets.DELETE("/:id", assetHandler.DeleteAsset)
		}

		// Operative unit routes
		units := v1.Group("/operative-units")
		{
			units.GET("", unitHandler.ListUnits)
			units.POST("", unitHandler.CreateUnit)
			units.PUT("/:id", unitHandler.RenameUnit)
			units.DELETE("/:id", unitHandler.DeleteUnit)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.RenameCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Settings routes
		settings := v1.Group("/settings")
		{
			settings.PUT("/password", settingsHandler.ChangePassword)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/requests", reportHandler.GenerateReport)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.POST("", notificationHandler.SendNotification)
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
