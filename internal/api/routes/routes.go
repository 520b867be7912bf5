package routes

import (
	"fmt"

	"workspace-backend/internal/api/handlers"
	"workspace-backend/internal/api/middleware"
	"workspace-backend/internal/auth"
	"workspace-backend/internal/config"
	"workspace-backend/internal/repository"
	"workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	secretRepo := repository.NewSecretRepository(db)
	mcpServerRepo := repository.NewMCPServerRepository(db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, validator)
	mcpServerService := service.NewMCPServerService(mcpServerRepo, secretRepo, validator)
	healthChecker := service.NewMCPHealthChecker(cfg.MCPHealthTimeout())
	attachmentService := service.NewAttachmentService(cfg.AttachmentMaxBytes, cfg.AttachmentMaxChars)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	mcpServerHandler := handlers.NewMCPServerHandler(mcpServerService, healthChecker)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token validation is reachable without a session
	router.POST("/api/auth/validate", authHandler.ValidateToken)

	// API routes - all endpoints below require authentication
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:projectId", projectHandler.GetProject)
			projects.PUT("/:projectId", projectHandler.UpdateProject)
			projects.DELETE("/:projectId", projectHandler.DeleteProject)
			projects.GET("/:projectId/apps", projectHandler.GetProjectApps)
			projects.POST("/:projectId/apps/:appId", projectHandler.AddApp)
			projects.DELETE("/:projectId/apps/:appId", projectHandler.RemoveApp)
		}

		// MCP server routes
		mcp := api.Group("/mcp")
		{
			mcp.GET("", mcpServerHandler.ListServers)
			mcp.POST("", mcpServerHandler.CreateServer)
			mcp.GET("/:serverId", mcpServerHandler.GetServer)
			mcp.PUT("/:serverId", mcpServerHandler.UpdateServer)
			mcp.DELETE("/:serverId", mcpServerHandler.DeleteServer)
			mcp.PATCH("/:serverId/toggle", mcpServerHandler.ToggleServer)
			mcp.POST("/:serverId/test", mcpServerHandler.TestServer)
		}

		// Attachment routes
		attachments := api.Group("/attachments")
		{
			attachments.POST("/extract", attachmentHandler.Extract)
		}
	}

	return router, nil
}
