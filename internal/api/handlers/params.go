package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a path parameter as a UUID, writing a 400 when it is malformed
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, name, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses an optional query parameter as a UUID
func uuidQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, name, "invalid "+name)
		return nil, false
	}
	return &id, true
}
