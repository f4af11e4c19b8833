package repository

import (
	"context"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRepository handles database operations for administrators
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.WithContext(ctx).Create(admin).Error
	return translate(err, "create admin", nil, apperrors.ErrAdminExists)
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get admin", apperrors.ErrAdminNotFound, nil)
	}
	return &admin, nil
}

// GetByUsername retrieves an admin by exact username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, translate(err, "get admin by username", apperrors.ErrAdminNotFound, nil)
	}
	return &admin, nil
}

// Count returns the number of admins
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error
	if err != nil {
		return 0, translate(err, "count admins", nil, nil)
	}
	return count, nil
}
