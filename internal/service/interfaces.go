package service

import (
	"bytes"
	"context"

	"parts-tracking-backend/internal/cache"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PartServiceInterface defines the interface for the part lifecycle service
type PartServiceInterface interface {
	CreateAndAssignPart(ctx context.Context, req *CreatePartRequest) (*PartResponse, error)
	AssignPart(ctx context.Context, partID string, req *AssignPartRequest) (*AssignmentResponse, error)
	UpdatePart(ctx context.Context, partID string, patch map[string]interface{}) (*PartResponse, error)
	UpdateConsumption(ctx context.Context, partID string, employeeID uuid.UUID, req *UpdateConsumptionRequest) (*PartResponse, error)
	UpdatePartAssignment(ctx context.Context, partID string, req *AssignPartRequest) (*AssignmentResponse, error)
	ReturnPart(ctx context.Context, assignmentID, employeeID uuid.UUID, req *ReturnPartRequest) (*AssignmentResponse, error)
	AcceptReturn(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error)
	RejectReturn(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error)
	ListParts(filter cache.PartFilter) []PartResponse
	GetPart(id string) (*PartResponse, error)
	ListAssignments(filter cache.AssignmentFilter) []AssignmentResponse
	ListPendingReturns() []AssignmentResponse
	EmployeeParts(employeeID uuid.UUID) ([]PartResponse, error)
	ReloadCache(ctx context.Context) error
}

// EmployeeServiceInterface defines the interface for employee account management
type EmployeeServiceInterface interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	ListEmployees() []EmployeeResponse
	GetEmployee(id uuid.UUID) (*EmployeeResponse, error)
	ChangeEmployeePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

// AdminServiceInterface defines the interface for administrator accounts and setup
type AdminServiceInterface interface {
	SetupStatus(ctx context.Context) (*SetupStatusResponse, error)
	SetupFirstAdmin(ctx context.Context, req *SetupRequest) (*AdminResponse, error)
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*AdminResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard figures
type DashboardServiceInterface interface {
	Stats() *DashboardStats
	EmployeeStats(employeeID uuid.UUID) *EmployeeDashboard
}

// ExportServiceInterface defines the interface for spreadsheet export
type ExportServiceInterface interface {
	ExportParts(ctx context.Context) (*bytes.Buffer, string, error)
}
