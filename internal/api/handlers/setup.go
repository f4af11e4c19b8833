package handlers

import (
	"net/http"

	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupHandler handles first-run administrator setup
type SetupHandler struct {
	adminService service.AdminServiceInterface
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(adminService service.AdminServiceInterface) *SetupHandler {
	return &SetupHandler{adminService: adminService}
}

// Status handles GET /api/setup/status
// @Summary Setup status
// @Description Report whether an administrator account exists
// @Tags setup
// @Produce json
// @Success 200 {object} service.SetupStatusResponse
// @Failure 503 {object} ErrorResponse
// @Router /setup/status [get]
func (h *SetupHandler) Status(c *gin.Context) {
	resp, err := h.adminService.SetupStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Setup handles POST /api/setup
// @Summary Create the first administrator
// @Description Only allowed while no administrator exists
// @Tags setup
// @Accept json
// @Produce json
// @Param setup body service.SetupRequest true "First administrator"
// @Success 201 {object} service.AdminResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already configured"
// @Router /setup [post]
func (h *SetupHandler) Setup(c *gin.Context) {
	var req service.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	admin, err := h.adminService.SetupFirstAdmin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}
