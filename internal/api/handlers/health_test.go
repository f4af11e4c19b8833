package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"parts-tracking-backend/internal/api/handlers"
	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/testutils/memstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func healthRouter(h *handlers.HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/health/ready", h.Ready)
	r.GET("/health/live", h.Live)
	return r
}

func loadedStore(t *testing.T) *cache.Store {
	t.Helper()
	store := cache.New()
	require.NoError(t, store.Refresh(context.Background(), memstore.New().Repositories()))
	return store
}

func TestHealth(t *testing.T) {
	r := healthRouter(handlers.NewHealthHandler(fakePinger{}, nil, loadedStore(t), "1.2.3"))

	w := serve(r, request(t, nil, nil, http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got handlers.HealthResponse
	decode(t, w, &got)
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, map[string]string{"database": "healthy"}, got.Services)
}

func TestHealthDatabaseDown(t *testing.T) {
	r := healthRouter(handlers.NewHealthHandler(fakePinger{err: errors.New("connection refused")}, nil, loadedStore(t), "dev"))

	w := serve(r, request(t, nil, nil, http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var got handlers.HealthResponse
	decode(t, w, &got)
	assert.Equal(t, "unhealthy", got.Status)
	assert.Equal(t, "error: connection refused", got.Services["database"])
}

func TestReadyWaitsForEntityStore(t *testing.T) {
	r := healthRouter(handlers.NewHealthHandler(fakePinger{}, nil, cache.New(), "dev"))

	w := serve(r, request(t, nil, nil, http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not loaded")

	r = healthRouter(handlers.NewHealthHandler(fakePinger{}, nil, loadedStore(t), "dev"))
	w = serve(r, request(t, nil, nil, http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":true`)
}

func TestLive(t *testing.T) {
	r := healthRouter(handlers.NewHealthHandler(fakePinger{err: errors.New("down")}, nil, cache.New(), "dev"))

	w := serve(r, request(t, nil, nil, http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
