package repository

import (
	"context"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	employeeCodeIndex = "idx_employees_employee_id"
	// employeeCodeLock is the advisory lock key guarding employee code allocation
	employeeCodeLock = 1001
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee. A taken username yields ErrEmployeeExists,
// a taken employee code ErrEmployeeCodeTaken.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	err := r.db.WithContext(ctx).Create(employee).Error
	if violatedConstraint(err) == employeeCodeIndex {
		return apperrors.ErrEmployeeCodeTaken
	}
	return translate(err, "create employee", nil, apperrors.ErrEmployeeExists)
}

// LockEmployeeCodes takes a transaction-scoped advisory lock so that only one
// transaction at a time reads MaxEmployeeID and inserts the next code
func (r *EmployeeRepository) LockEmployeeCodes(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", employeeCodeLock).Error
	return translate(err, "lock employee codes", nil, nil)
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get employee", apperrors.ErrEmployeeNotFound, nil)
	}
	return &employee, nil
}

// GetByUsername retrieves an employee by exact username
func (r *EmployeeRepository) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&employee).Error
	if err != nil {
		return nil, translate(err, "get employee by username", apperrors.ErrEmployeeNotFound, nil)
	}
	return &employee, nil
}

// UsernameTaken reports whether any employee uses username, ignoring case
func (r *EmployeeRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "check username", nil, nil)
	}
	return count > 0, nil
}

// GetAll retrieves all employees ordered by employee number
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).Order("employee_id ASC").Find(&employees).Error
	return employees, translate(err, "list employees", nil, nil)
}

// MaxEmployeeID returns the highest allocated employee number, 0 when there is none
func (r *EmployeeRepository) MaxEmployeeID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Select("COALESCE(MAX(employee_id), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, translate(err, "read max employee id", nil, nil)
	}
	return max, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	err := r.db.WithContext(ctx).Save(employee).Error
	return translate(err, "update employee", nil, apperrors.ErrEmployeeExists)
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "delete employee", nil, nil)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}
