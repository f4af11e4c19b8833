package auth

import (
	"context"

	"parts-tracking-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/auth_mocks.go -package=mocks

// AuthenticatorInterface defines the interface for credential checks
type AuthenticatorInterface interface {
	Authenticate(ctx context.Context, role models.Role, username, password string) (*Identity, error)
}

// Ensure Authenticator implements AuthenticatorInterface
var _ AuthenticatorInterface = (*Authenticator)(nil)
