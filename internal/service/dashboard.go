package service

import (
	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"

	"github.com/google/uuid"
)

const recentAssignmentsLimit = 5

// CompletedStatusDone marks a part whose service call has been closed
const CompletedStatusDone = "Completed"

// DashboardService computes dashboard figures from the entity store
type DashboardService struct {
	store *cache.Store
	parts *PartService
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(store *cache.Store, parts *PartService) *DashboardService {
	return &DashboardService{store: store, parts: parts}
}

// DashboardStats is the admin overview
type DashboardStats struct {
	TotalParts        int                  `json:"total_parts"`
	AvailableParts    int                  `json:"available_parts"`
	AssignedParts     int                  `json:"assigned_parts"`
	PendingReturns    int                  `json:"pending_returns"`
	CompletedParts    int                  `json:"completed_parts"`
	DefectiveParts    int                  `json:"defective_parts"`
	GPRParts          int                  `json:"gpr_parts"`
	TotalEmployees    int                  `json:"total_employees"`
	RecentAssignments []AssignmentResponse `json:"recent_assignments"`
}

// EmployeeDashboard is one employee's overview
type EmployeeDashboard struct {
	ActiveAssignments int `json:"active_assignments"`
	TotalAssignments  int `json:"total_assignments"`
	GPRReturns        int `json:"gpr_returns"`
	DefectiveReturns  int `json:"defective_returns"`
	PendingReturns    int `json:"pending_returns"`
	ApprovedReturns   int `json:"approved_returns"`
	RejectedReturns   int `json:"rejected_returns"`
	PartsInCustody    int `json:"parts_in_custody"`
}

// Stats computes the admin overview
func (s *DashboardService) Stats() *DashboardStats {
	stats := &DashboardStats{}
	for _, p := range s.store.ListParts(cache.PartFilter{}) {
		stats.TotalParts++
		switch p.Status {
		case models.PartStatusAvailable:
			stats.AvailableParts++
		case models.PartStatusAssigned, models.PartStatusInUse:
			stats.AssignedParts++
		case models.PartStatusReturnedDefective:
			stats.DefectiveParts++
		case models.PartStatusReturnedGPR:
			stats.GPRParts++
		}
		if p.PendingReturnApproval == models.ReturnApprovalPending {
			stats.PendingReturns++
		}
		if p.CompletedStatus == CompletedStatusDone {
			stats.CompletedParts++
		}
	}
	stats.TotalEmployees = len(s.store.ListEmployees())

	recent := s.parts.ListAssignments(cache.AssignmentFilter{})
	if len(recent) > recentAssignmentsLimit {
		recent = recent[:recentAssignmentsLimit]
	}
	stats.RecentAssignments = recent
	return stats
}

// EmployeeStats computes the overview for one employee
func (s *DashboardService) EmployeeStats(employeeID uuid.UUID) *EmployeeDashboard {
	d := &EmployeeDashboard{}
	for _, a := range s.store.ListAssignments(cache.AssignmentFilter{EmployeeID: &employeeID}) {
		d.TotalAssignments++
		switch a.Status {
		case models.AssignmentStatusActive:
			d.ActiveAssignments++
		case models.AssignmentStatusPendingReturn:
			d.PendingReturns++
		case models.AssignmentStatusCompleted:
			d.ApprovedReturns++
		}
		if a.ReturnCondition != nil {
			switch *a.ReturnCondition {
			case models.ReturnConditionGPR:
				d.GPRReturns++
			case models.ReturnConditionDefective:
				d.DefectiveReturns++
			}
		}
	}
	for _, p := range s.store.ListParts(cache.PartFilter{AssignedTo: &employeeID, Approval: models.ReturnApprovalRejected}) {
		if p.InCustodyOf(employeeID) {
			d.RejectedReturns++
		}
	}
	d.PartsInCustody = len(s.store.AssignedParts(employeeID))
	return d
}
