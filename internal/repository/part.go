package repository

import (
	"context"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create inserts a new part. A taken call id yields a duplicate call id error.
func (r *PartRepository) Create(ctx context.Context, part *models.Part) error {
	err := r.db.WithContext(ctx).Create(part).Error
	return translate(err, "create part", nil, apperrors.NewDuplicateCallIDError(part.ID))
}

// GetByID retrieves a part by its call id
func (r *PartRepository) GetByID(ctx context.Context, id string) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get part", apperrors.ErrPartNotFound, nil)
	}
	return &part, nil
}

// GetByIDForUpdate retrieves a part and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released at once.
func (r *PartRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&part, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "lock part", apperrors.ErrPartNotFound, nil)
	}
	return &part, nil
}

// Exists reports whether a part with the given call id is stored
func (r *PartRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Part{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate(err, "check part", nil, nil)
	}
	return count > 0, nil
}

// GetAll retrieves every part ordered by creation time
func (r *PartRepository) GetAll(ctx context.Context) ([]models.Part, error) {
	var parts []models.Part
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&parts).Error
	return parts, translate(err, "list parts", nil, nil)
}

// Update saves every column of the part
func (r *PartRepository) Update(ctx context.Context, part *models.Part) error {
	result := r.db.WithContext(ctx).Save(part)
	return translate(result.Error, "update part", nil, nil)
}

// Delete deletes a part by call id
func (r *PartRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Part{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "delete part", nil, nil)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPartNotFound
	}
	return nil
}
