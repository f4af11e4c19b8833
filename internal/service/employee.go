package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/cache"
	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FirstEmployeeID is the code given to the first employee ever created
const FirstEmployeeID = 1001

// EmployeeService handles business logic for employee accounts
type EmployeeService struct {
	tx         repository.TransactionManagerInterface
	store      *cache.Store
	validator  *validator.Validate
	metrics    *metrics.Metrics
	bcryptCost int
}

// Ensure EmployeeService implements EmployeeServiceInterface
var _ EmployeeServiceInterface = (*EmployeeService)(nil)

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(tx repository.TransactionManagerInterface, store *cache.Store, validator *validator.Validate, m *metrics.Metrics, bcryptCost int) *EmployeeService {
	return &EmployeeService{
		tx:         tx,
		store:      store,
		validator:  validator,
		metrics:    m,
		bcryptCost: bcryptCost,
	}
}

// CreateEmployeeRequest represents the request to create an employee account
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=200,nomarkup" example:"Ravi Kumar"`
	Username string `json:"username" validate:"required,min=3,max=100,nomarkup" example:"ravi"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"secret123"`
}

// ChangePasswordRequest represents the request to set a new employee password
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// EmployeeStats summarises an employee's custody history
type EmployeeStats struct {
	ActiveAssignments int `json:"active_assignments"`
	TotalAssignments  int `json:"total_assignments"`
	GPRReturns        int `json:"gpr_returns"`
	DefectiveReturns  int `json:"defective_returns"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID            uuid.UUID     `json:"id"`
	EmployeeID    int           `json:"employee_id" example:"1001"`
	Name          string        `json:"name"`
	Username      string        `json:"username"`
	AssignedParts []string      `json:"assigned_parts"`
	Stats         EmployeeStats `json:"stats"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CreateEmployee creates an employee with the next sequential employee code
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
	}
	err = runInTransaction(ctx, s.tx, s.store, s.metrics, "create_employee", func(u *unitOfWork) error {
		if err := u.repos.Employees.LockEmployeeCodes(ctx); err != nil {
			return fmt.Errorf("failed to lock employee codes: %w", err)
		}
		taken, err := u.repos.Employees.UsernameTaken(ctx, employee.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return apperrors.ErrEmployeeExists
		}

		highest, err := u.repos.Employees.MaxEmployeeID(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate employee id: %w", err)
		}
		employee.EmployeeID = highest + 1
		if employee.EmployeeID < FirstEmployeeID {
			employee.EmployeeID = FirstEmployeeID
		}

		if err := u.repos.Employees.Create(ctx, employee); err != nil {
			return err
		}
		u.change.Employees = append(u.change.Employees, *employee)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"employee_id": employee.EmployeeID,
		"username":    employee.Username,
	}).Info("Employee created")
	return s.toResponse(employee), nil
}

// ListEmployees returns all employees ordered by employee code
func (s *EmployeeService) ListEmployees() []EmployeeResponse {
	employees := s.store.ListEmployees()
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = *s.toResponse(&employees[i])
	}
	return out
}

// GetEmployee returns one employee with derived custody
func (s *EmployeeService) GetEmployee(id uuid.UUID) (*EmployeeResponse, error) {
	employee, ok := s.store.Employee(id)
	if !ok {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return s.toResponse(&employee), nil
}

// ChangeEmployeePassword re-hashes an employee's password
func (s *EmployeeService) ChangeEmployeePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	err = runInTransaction(ctx, s.tx, s.store, s.metrics, "change_password", func(u *unitOfWork) error {
		employee, err := u.repos.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		employee.PasswordHash = hash
		if err := u.repos.Employees.Update(ctx, employee); err != nil {
			return err
		}
		u.change.Employees = append(u.change.Employees, *employee)
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("employee", id.String()).Info("Employee password changed")
	return nil
}

// DeleteEmployee removes an employee who holds no parts. Past custody
// records stay as history.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	err := runInTransaction(ctx, s.tx, s.store, s.metrics, "delete_employee", func(u *unitOfWork) error {
		if _, err := u.repos.Employees.GetByID(ctx, id); err != nil {
			return err
		}
		assignments, err := u.repos.Assignments.GetByEmployeeID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load assignments: %w", err)
		}
		for _, a := range assignments {
			if a.Status.IsOpen() {
				return apperrors.ErrEmployeeHasCustody
			}
		}
		if err := u.repos.Employees.Delete(ctx, id); err != nil {
			return err
		}
		u.change.DeletedEmployees = append(u.change.DeletedEmployees, id)
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("employee", id.String()).Info("Employee deleted")
	return nil
}

// Stats computes custody statistics for one employee
func (s *EmployeeService) Stats(employeeID uuid.UUID) EmployeeStats {
	var stats EmployeeStats
	for _, a := range s.store.ListAssignments(cache.AssignmentFilter{EmployeeID: &employeeID}) {
		stats.TotalAssignments++
		if a.Status == models.AssignmentStatusActive {
			stats.ActiveAssignments++
		}
		if a.ReturnCondition != nil {
			switch *a.ReturnCondition {
			case models.ReturnConditionGPR:
				stats.GPRReturns++
			case models.ReturnConditionDefective:
				stats.DefectiveReturns++
			}
		}
	}
	return stats
}

func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:            employee.ID,
		EmployeeID:    employee.EmployeeID,
		Name:          employee.Name,
		Username:      employee.Username,
		AssignedParts: s.store.AssignedParts(employee.ID),
		Stats:         s.Stats(employee.ID),
		CreatedAt:     employee.CreatedAt,
	}
}
