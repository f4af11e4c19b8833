package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Field string `json:"field,omitempty" example:"call_id"`
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsInvalidTransition(err):
		return http.StatusUnprocessableEntity
	case apperrors.IsConnection(err):
		return http.StatusServiceUnavailable
	}
	if _, ok := apperrors.IsRateLimited(err); ok {
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": ...}. Internal errors are logged and
// hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	body := ErrorResponse{Error: err.Error()}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		body.Field = validationErr.Field
	}
	if rateErr, ok := apperrors.IsRateLimited(err); ok {
		seconds := int(math.Ceil(rateErr.RetryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(seconds))
	}

	log := logger.WithContext(c.Request.Context()).WithError(err).WithField("status", status)
	switch status {
	case http.StatusInternalServerError:
		log.Error("Request failed")
		body.Error = "internal server error"
	case http.StatusServiceUnavailable:
		log.Error("Backing store unavailable")
		body.Error = "service temporarily unavailable"
	}

	c.JSON(status, body)
}

// badRequest reports a malformed body or parameter
func badRequest(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Field: field})
}
