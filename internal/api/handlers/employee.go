package handlers

import (
	"net/http"

	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employee accounts
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Description List employees ordered by employee code, with custody and return statistics
// @Tags employees
// @Produce json
// @Success 200 {array} service.EmployeeResponse
// @Security SessionCookie
// @Router /v1/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.employeeService.ListEmployees())
}

// CreateEmployee handles POST /employees
// @Summary Create an employee
// @Description Create an employee account with the next employee code
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee"
// @Success 201 {object} service.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Security SessionCookie
// @Router /v1/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/{id}
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee UUID"
// @Success 200 {object} service.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/{id}
// @Summary Delete an employee
// @Description Refused while the employee holds parts in custody
// @Tags employees
// @Param id path string true "Employee UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Employee holds parts"
// @Security SessionCookie
// @Router /v1/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePassword handles PUT /employees/{id}/password
// @Summary Set an employee password
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee UUID"
// @Param password body service.ChangePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security SessionCookie
// @Router /v1/employees/{id}/password [put]
func (h *EmployeeHandler) ChangePassword(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "invalid request body")
		return
	}
	if err := h.employeeService.ChangeEmployeePassword(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
