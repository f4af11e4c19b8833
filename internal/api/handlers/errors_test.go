package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "parts-tracking-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("call_id", "is required"), http.StatusBadRequest},
		{"lifecycle key in patch", apperrors.ErrLifecycleFieldInPatch, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not the holder", apperrors.ErrNotPartHolder, http.StatusForbidden},
		{"part not found", apperrors.ErrPartNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrAssignmentNotFound), http.StatusNotFound},
		{"duplicate call id", apperrors.NewDuplicateCallIDError("CALL-1"), http.StatusConflict},
		{"custody conflict", apperrors.ErrEmployeeHasCustody, http.StatusConflict},
		{"invalid transition", apperrors.NewInvalidTransitionError("part", "available/none", "accept"), http.StatusUnprocessableEntity},
		{"locked", &apperrors.RateLimitedError{RetryAfter: time.Minute}, http.StatusTooManyRequests},
		{"connection", apperrors.NewConnectionError("load parts", errors.New("refused")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	render := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(c, err)
		return w
	}

	w := render(&apperrors.RateLimitedError{RetryAfter: 14*time.Minute + 30*time.Second})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "870", w.Header().Get("Retry-After"))

	w = render(apperrors.NewValidationError("call_id", "is required"))
	assert.JSONEq(t, `{"error":"validation error: call_id - is required","field":"call_id"}`, w.Body.String())

	w = render(errors.New("pq: relation does not exist"))
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	w = render(apperrors.NewConnectionError("load parts", errors.New("dial tcp: refused")))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}
