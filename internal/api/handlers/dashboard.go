package handlers

import (
	"fmt"
	"net/http"

	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the admin overview and the spreadsheet export
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
	exportService    service.ExportServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface, exportService service.ExportServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// Stats handles GET /dashboard
// @Summary Admin overview
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Security SessionCookie
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Stats())
}

// ExportParts handles GET /export/parts.xlsx
// @Summary Export the parts ledger
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/export/parts.xlsx [get]
func (h *DashboardHandler) ExportParts(c *gin.Context) {
	buf, filename, err := h.exportService.ExportParts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
