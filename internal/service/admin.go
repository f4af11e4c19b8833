package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AdminService handles administrator accounts and first-run setup
type AdminService struct {
	tx         repository.TransactionManagerInterface
	validator  *validator.Validate
	bcryptCost int
}

// Ensure AdminService implements AdminServiceInterface
var _ AdminServiceInterface = (*AdminService)(nil)

// NewAdminService creates a new AdminService
func NewAdminService(tx repository.TransactionManagerInterface, validator *validator.Validate, bcryptCost int) *AdminService {
	return &AdminService{
		tx:         tx,
		validator:  validator,
		bcryptCost: bcryptCost,
	}
}

// CreateAdminRequest represents the request to create an administrator
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,max=200,nomarkup" example:"Store Admin"`
	Username string `json:"username" validate:"required,min=3,max=100,nomarkup" example:"admin"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SetupRequest represents the first-run setup form
type SetupRequest struct {
	CreateAdminRequest
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SetupStatusResponse tells clients whether first-run setup is still open
type SetupStatusResponse struct {
	Configured bool `json:"configured"`
}

// AdminResponse represents an administrator in API responses
type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// SetupStatus reports whether an administrator exists
func (s *AdminService) SetupStatus(ctx context.Context) (*SetupStatusResponse, error) {
	var count int64
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		count, err = repos.Admins.Count(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	return &SetupStatusResponse{Configured: count > 0}, nil
}

// SetupFirstAdmin creates the first administrator. It is refused once any
// administrator exists.
func (s *AdminService) SetupFirstAdmin(ctx context.Context, req *SetupRequest) (*AdminResponse, error) {
	s.normalize(&req.CreateAdminRequest)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.create(ctx, &req.CreateAdminRequest, true)
}

// CreateAdmin creates an additional administrator
func (s *AdminService) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*AdminResponse, error) {
	s.normalize(req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.create(ctx, req, false)
}

func (s *AdminService) normalize(req *CreateAdminRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
}

func (s *AdminService) create(ctx context.Context, req *CreateAdminRequest, firstOnly bool) (*AdminResponse, error) {
	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
	}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if firstOnly {
			count, err := repos.Admins.Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to count admins: %w", err)
			}
			if count > 0 {
				return apperrors.ErrAdminAlreadyConfigured
			}
		}
		return repos.Admins.Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("username", admin.Username).Info("Administrator created")
	return &AdminResponse{
		ID:        admin.ID,
		Name:      admin.Name,
		Username:  admin.Username,
		CreatedAt: admin.CreatedAt,
	}, nil
}
