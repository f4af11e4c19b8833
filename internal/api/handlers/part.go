package handlers

import (
	"net/http"

	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for the parts ledger and its lifecycle
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{partService: partService}
}

// ListParts handles GET /parts
// @Summary List parts
// @Description List parts, oldest first, optionally filtered
// @Tags parts
// @Produce json
// @Param status query string false "Lifecycle status" Enums(available, assigned, in-use, returned-gpr, returned-defective)
// @Param approval query string false "Return approval" Enums(none, pending, approved, rejected)
// @Param assigned_to query string false "Employee UUID"
// @Success 200 {array} service.PartResponse
// @Failure 400 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	filter := cache.PartFilter{
		Status:   models.PartStatus(c.Query("status")),
		Approval: models.ReturnApproval(c.Query("approval")),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		badRequest(c, "status", "invalid status")
		return
	}
	if filter.Approval != "" && !filter.Approval.IsValid() {
		badRequest(c, "approval", "invalid approval")
		return
	}
	assignedTo, ok := uuidQuery(c, "assigned_to")
	if !ok {
		return
	}
	filter.AssignedTo = assignedTo

	c.JSON(http.StatusOK, h.partService.ListParts(filter))
}

// CreatePart handles POST /parts
// @Summary Register a part
// @Description Register a part under its call id, optionally allotting it to an employee in the same step
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part"
// @Success 201 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Duplicate call id"
// @Security SessionCookie
// @Router /v1/parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	part, err := h.partService.CreateAndAssignPart(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

// GetPart handles GET /parts/{id}
// @Summary Get a part
// @Tags parts
// @Produce json
// @Param id path string true "Call id"
// @Success 200 {object} service.PartResponse
// @Failure 404 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	part, err := h.partService.GetPart(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// UpdatePart handles PATCH /parts/{id}
// @Summary Edit descriptive columns
// @Description Merge descriptive columns into a part. Lifecycle fields are refused.
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Call id"
// @Param patch body map[string]string true "Columns to change"
// @Success 200 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/parts/{id} [patch]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	part, err := h.partService.UpdatePart(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// AssignPart handles POST /parts/{id}/assign
// @Summary Allot a part
// @Description Allot an available part to an employee
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Call id"
// @Param assignment body service.AssignPartRequest true "Employee"
// @Success 201 {object} service.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Part is not available"
// @Security SessionCookie
// @Router /v1/parts/{id}/assign [post]
func (h *PartHandler) AssignPart(c *gin.Context) {
	var req service.AssignPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	assignment, err := h.partService.AssignPart(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// UpdatePartAssignment handles PUT /parts/{id}/assignment
// @Summary Reassign a part
// @Description Move the open custody record of a part to another employee
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Call id"
// @Param assignment body service.AssignPartRequest true "New holder"
// @Success 200 {object} service.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/parts/{id}/assignment [put]
func (h *PartHandler) UpdatePartAssignment(c *gin.Context) {
	var req service.AssignPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	assignment, err := h.partService.UpdatePartAssignment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// ListAssignments handles GET /assignments
// @Summary List custody records
// @Tags assignments
// @Produce json
// @Param status query string false "Assignment status" Enums(active, pending-return, completed)
// @Param employee_id query string false "Employee UUID"
// @Param part_id query string false "Call id"
// @Success 200 {array} service.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/assignments [get]
func (h *PartHandler) ListAssignments(c *gin.Context) {
	filter := cache.AssignmentFilter{
		Status: models.AssignmentStatus(c.Query("status")),
		PartID: c.Query("part_id"),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		badRequest(c, "status", "invalid status")
		return
	}
	employeeID, ok := uuidQuery(c, "employee_id")
	if !ok {
		return
	}
	filter.EmployeeID = employeeID

	c.JSON(http.StatusOK, h.partService.ListAssignments(filter))
}

// ListPendingReturns handles GET /returns/pending
// @Summary Returns awaiting approval
// @Tags returns
// @Produce json
// @Success 200 {array} service.AssignmentResponse
// @Security SessionCookie
// @Router /v1/returns/pending [get]
func (h *PartHandler) ListPendingReturns(c *gin.Context) {
	c.JSON(http.StatusOK, h.partService.ListPendingReturns())
}

// AcceptReturn handles POST /returns/{assignmentId}/accept
// @Summary Accept a return
// @Description Approve a pending return and release custody
// @Tags returns
// @Produce json
// @Param assignmentId path string true "Assignment UUID"
// @Success 200 {object} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No pending return"
// @Security SessionCookie
// @Router /v1/returns/{assignmentId}/accept [post]
func (h *PartHandler) AcceptReturn(c *gin.Context) {
	id, ok := uuidParam(c, "assignmentId")
	if !ok {
		return
	}
	assignment, err := h.partService.AcceptReturn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// RejectReturn handles POST /returns/{assignmentId}/reject
// @Summary Reject a return
// @Description Refuse a pending return; the part goes back to the employee
// @Tags returns
// @Produce json
// @Param assignmentId path string true "Assignment UUID"
// @Success 200 {object} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No pending return"
// @Security SessionCookie
// @Router /v1/returns/{assignmentId}/reject [post]
func (h *PartHandler) RejectReturn(c *gin.Context) {
	id, ok := uuidParam(c, "assignmentId")
	if !ok {
		return
	}
	assignment, err := h.partService.RejectReturn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// RefreshCache handles POST /admin/cache/refresh
// @Summary Reload the entity store
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/admin/cache/refresh [post]
func (h *PartHandler) RefreshCache(c *gin.Context) {
	if err := h.partService.ReloadCache(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entity store reloaded"})
}
