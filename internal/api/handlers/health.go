package handlers

import (
	"context"
	"net/http"
	"time"

	"parts-tracking-backend/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      Pinger
	redis   *redis.Client
	store   *cache.Store
	version string
}

// NewHealthHandler creates a new health handler. redis may be nil when
// lockout counters are kept in memory.
func NewHealthHandler(db Pinger, redisClient *redis.Client, store *cache.Store, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redisClient,
		store:   store,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// check pings every backing service and reports whether all answered
func (h *HealthHandler) check(ctx context.Context, okWord, failWord string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	healthy := true
	services := make(map[string]string)

	if err := h.db.PingContext(ctx); err != nil {
		healthy = false
		services["database"] = failWord + ": " + err.Error()
	} else {
		services["database"] = okWord
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			healthy = false
			services["redis"] = failWord + ": " + err.Error()
		} else {
			services["redis"] = okWord
		}
	}
	return services, healthy
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database and Redis connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.check(c.Request.Context(), "healthy", "error")
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Ready once the backing services answer and the entity store has been loaded
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.check(c.Request.Context(), "ready", "not ready")

	loadedAt := h.store.LoadedAt()
	if loadedAt.IsZero() {
		ready = false
		services["entity_store"] = "not loaded"
	} else {
		services["entity_store"] = "loaded " + loadedAt.UTC().Format(time.RFC3339)
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
