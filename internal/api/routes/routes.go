package routes

import (
	"context"
	"fmt"
	"time"

	"parts-tracking-backend/internal/api/handlers"
	"parts-tracking-backend/internal/api/middleware"
	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/config"
	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/repository"
	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const initialLoadTimeout = 30 * time.Second

// Dependencies are the long-lived resources the router is built on
type Dependencies struct {
	DB      *gorm.DB
	Redis   *redis.Client // optional, lockout counters stay in memory without it
	Config  *config.Config
	Metrics *metrics.Metrics
	Version string
}

// LockoutPolicy converts the configured lockout settings
func LockoutPolicy(cfg *config.Config) auth.LockoutPolicy {
	return auth.LockoutPolicy{
		MaxAttempts:  cfg.LockoutMaxAttempts,
		LockDuration: cfg.LockoutDuration,
		CounterTTL:   cfg.LockoutCounterTTL,
	}
}

func attemptStore(deps Dependencies) auth.AttemptStore {
	policy := LockoutPolicy(deps.Config)
	if deps.Redis != nil {
		return auth.NewRedisAttemptStore(deps.Redis, policy)
	}
	return auth.NewMemoryAttemptStore(policy, nil)
}

// SetupRoutes configures all the routes for the application and loads the entity store
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	log := logger.New()

	sessions, err := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}
	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}

	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecurityHeaders())

	validator := service.NewValidator()
	store := cache.New()

	// Initialize repositories
	repos := repository.NewRepositories(deps.DB)
	txManager := repository.NewTransactionManager(deps.DB)

	// Initialize services
	partService := service.NewPartService(txManager, store, validator, deps.Metrics)
	employeeService := service.NewEmployeeService(txManager, store, validator, deps.Metrics, cfg.BcryptCost)
	adminService := service.NewAdminService(txManager, validator, cfg.BcryptCost)
	dashboardService := service.NewDashboardService(store, partService)
	exportService := service.NewExportService(store)
	authenticator := auth.NewAuthenticator(repos.Admins, repos.Employees, attemptStore(deps), deps.Metrics)
	gate := auth.NewAuthMiddleware(sessions).WithPrincipalCheck(auth.CurrentEmployees(store))

	ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
	defer cancel()
	if err := partService.ReloadCache(ctx); err != nil {
		log.WithError(err).Warn("Initial entity store load failed, readiness stays down until a refresh succeeds")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sqlDB, deps.Redis, store, deps.Version)
	authHandler := handlers.NewAuthHandler(authenticator, sessions)
	setupHandler := handlers.NewSetupHandler(adminService)
	partHandler := handlers.NewPartHandler(partService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	meHandler := handlers.NewMeHandler(partService, dashboardService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, exportService)

	// Ops routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/admin/login", authHandler.AdminLogin)
			authGroup.POST("/employee/login", authHandler.EmployeeLogin)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", gate.RequireSession(), authHandler.Me)
		}

		api.GET("/setup/status", setupHandler.Status)
		api.POST("/setup", setupHandler.Setup)
	}

	v1 := api.Group("/v1", gate.RequireSession())

	// Admin routes
	admin := v1.Group("", gate.RequireRole(models.RoleAdmin))
	{
		parts := admin.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.POST("", partHandler.CreatePart)
			parts.GET("/:id", partHandler.GetPart)
			parts.PATCH("/:id", partHandler.UpdatePart)
			parts.POST("/:id/assign", partHandler.AssignPart)
			parts.PUT("/:id/assignment", partHandler.UpdatePartAssignment)
		}

		admin.GET("/assignments", partHandler.ListAssignments)

		returns := admin.Group("/returns")
		{
			returns.GET("/pending", partHandler.ListPendingReturns)
			returns.POST("/:assignmentId/accept", partHandler.AcceptReturn)
			returns.POST("/:assignmentId/reject", partHandler.RejectReturn)
		}

		employees := admin.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
			employees.PUT("/:id/password", employeeHandler.ChangePassword)
		}

		admin.GET("/dashboard", dashboardHandler.Stats)
		admin.GET("/export/parts.xlsx", dashboardHandler.ExportParts)
		admin.POST("/admin/cache/refresh", partHandler.RefreshCache)
	}

	// Employee self-service routes
	me := v1.Group("/me", gate.RequireRole(models.RoleEmployee))
	{
		me.GET("/parts", meHandler.MyParts)
		me.GET("/assignments", meHandler.MyAssignments)
		me.GET("/dashboard", meHandler.MyDashboard)
		me.PATCH("/parts/:id/consumption", meHandler.UpdateConsumption)
		me.POST("/assignments/:id/return", meHandler.ReturnPart)
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
