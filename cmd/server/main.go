package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parts-tracking-backend/internal/api/routes"
	"parts-tracking-backend/internal/config"
	"parts-tracking-backend/internal/database"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "parts-tracking-backend/docs" // This is needed for swag
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Parts Tracking API
//	@version		1.0
//	@description	Backend API for tracking spare parts through assignment, consumption and return.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						pt_session
//	@description				Session cookie set by the login endpoints.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	redisClient := connectRedis(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(routes.Dependencies{
		DB:      db,
		Redis:   redisClient,
		Config:  cfg,
		Metrics: metrics.New(),
		Version: version,
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.WithField("signal", sig.String()).Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// connectRedis returns nil when no address is configured or the server does not answer,
// in which case lockout counters are kept in process memory.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).WithField("addr", cfg.RedisAddr).Warn("Redis unavailable, using in-memory login lockout")
		_ = client.Close()
		return nil
	}
	logrus.WithField("addr", cfg.RedisAddr).Info("Connected to Redis")
	return client
}
