package repository

import (
	"context"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment. A second open assignment for the same
// part violates idx_assignments_open_part.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	err := r.db.WithContext(ctx).Create(assignment).Error
	return translate(err, "create assignment", nil, apperrors.ErrActiveAssignmentExists)
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get assignment", apperrors.ErrAssignmentNotFound, nil)
	}
	return &assignment, nil
}

// GetOpenByPartID retrieves the assignment of a part that is not completed yet
func (r *AssignmentRepository) GetOpenByPartID(ctx context.Context, partID string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).
		Where("part_id = ? AND status <> ?", partID, models.AssignmentStatusCompleted).
		Order("assigned_date DESC").
		First(&assignment).Error
	if err != nil {
		return nil, translate(err, "get open assignment", apperrors.ErrAssignmentNotFound, nil)
	}
	return &assignment, nil
}

// GetByEmployeeID retrieves all assignments of an employee, newest first
func (r *AssignmentRepository) GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("assigned_date DESC").
		Find(&assignments).Error
	return assignments, translate(err, "list employee assignments", nil, nil)
}

// GetAll retrieves every assignment, newest first
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).Order("assigned_date DESC").Find(&assignments).Error
	return assignments, translate(err, "list assignments", nil, nil)
}

// Update saves every column of the assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	err := r.db.WithContext(ctx).Save(assignment).Error
	return translate(err, "update assignment", nil, apperrors.ErrActiveAssignmentExists)
}
