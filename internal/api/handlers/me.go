package handlers

import (
	"net/http"

	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/cache"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the signed-in employee's own parts and returns
type MeHandler struct {
	partService      service.PartServiceInterface
	dashboardService service.DashboardServiceInterface
}

// NewMeHandler creates a new handler for employee self-service routes
func NewMeHandler(partService service.PartServiceInterface, dashboardService service.DashboardServiceInterface) *MeHandler {
	return &MeHandler{
		partService:      partService,
		dashboardService: dashboardService,
	}
}

func (h *MeHandler) identity(c *gin.Context) (*auth.Identity, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrSessionMissing)
		return nil, false
	}
	return identity, true
}

// MyParts handles GET /me/parts
// @Summary Parts in my custody
// @Tags me
// @Produce json
// @Success 200 {array} service.PartResponse
// @Failure 401 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/me/parts [get]
func (h *MeHandler) MyParts(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	parts, err := h.partService.EmployeeParts(identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// MyAssignments handles GET /me/assignments
// @Summary My custody records
// @Tags me
// @Produce json
// @Success 200 {array} service.AssignmentResponse
// @Failure 401 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/me/assignments [get]
func (h *MeHandler) MyAssignments(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.partService.ListAssignments(cache.AssignmentFilter{EmployeeID: &identity.ID}))
}

// MyDashboard handles GET /me/dashboard
// @Summary My statistics
// @Tags me
// @Produce json
// @Success 200 {object} service.EmployeeDashboard
// @Failure 401 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/me/dashboard [get]
func (h *MeHandler) MyDashboard(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboardService.EmployeeStats(identity.ID))
}

// UpdateConsumption handles PATCH /me/parts/{id}/consumption
// @Summary Record consumption
// @Description Update the consumption columns of a part in my custody. Marking it "In Use" or "Consumed" moves it to in-use.
// @Tags me
// @Accept json
// @Produce json
// @Param id path string true "Call id"
// @Param consumption body service.UpdateConsumptionRequest true "Consumption columns"
// @Success 200 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Part not in my custody"
// @Failure 404 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/me/parts/{id}/consumption [patch]
func (h *MeHandler) UpdateConsumption(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	var req service.UpdateConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	part, err := h.partService.UpdateConsumption(c.Request.Context(), c.Param("id"), identity.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// ReturnPart handles POST /me/assignments/{id}/return
// @Summary Return a part
// @Description Hand a part back for admin approval, declaring its condition
// @Tags me
// @Accept json
// @Produce json
// @Param id path string true "Assignment UUID"
// @Param return body service.ReturnPartRequest true "Condition and notes"
// @Success 200 {object} service.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Assignment belongs to another employee"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Assignment is not active"
// @Security SessionCookie
// @Router /v1/me/assignments/{id}/return [post]
func (h *MeHandler) ReturnPart(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ReturnPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	assignment, err := h.partService.ReturnPart(c.Request.Context(), id, identity.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}
