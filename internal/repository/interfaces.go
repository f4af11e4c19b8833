package repository

import (
	"context"

	"parts-tracking-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PartRepositoryInterface defines the interface for part repository operations
type PartRepositoryInterface interface {
	Create(ctx context.Context, part *models.Part) error
	GetByID(ctx context.Context, id string) (*models.Part, error)
	GetByIDForUpdate(ctx context.Context, id string) (*models.Part, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetAll(ctx context.Context) ([]models.Part, error)
	Update(ctx context.Context, part *models.Part) error
	Delete(ctx context.Context, id string) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByUsername(ctx context.Context, username string) (*models.Employee, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	GetAll(ctx context.Context) ([]models.Employee, error)
	MaxEmployeeID(ctx context.Context) (int, error)
	LockEmployeeCodes(ctx context.Context) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	GetOpenByPartID(ctx context.Context, partID string) (*models.Assignment, error)
	GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]models.Assignment, error)
	GetAll(ctx context.Context) ([]models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
}

// AdminRepositoryInterface defines the interface for admin repository operations
type AdminRepositoryInterface interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionManagerInterface runs a unit of work against transaction-bound repositories
type TransactionManagerInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
