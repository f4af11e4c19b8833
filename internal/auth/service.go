package auth

import (
	"context"
	"strings"
	"sync"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/logger"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/repository"

	"github.com/google/uuid"
)

// Identity is the authenticated principal carried by a session
type Identity struct {
	Role       models.Role `json:"role" example:"employee"`
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name" example:"Ravi Kumar"`
	Username   string      `json:"username" example:"ravi"`
	EmployeeID int         `json:"employee_id,omitempty" example:"1001"`
	// Credential fingerprints the password hash the session was issued against
	Credential string `json:"-"`
}

// IsAdmin reports whether the identity belongs to an administrator
func (i *Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

type principal struct {
	identity Identity
	hash     string
}

// Authenticator verifies credentials and enforces the login lockout
type Authenticator struct {
	admins    repository.AdminRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	attempts  AttemptStore
	metrics   *metrics.Metrics
}

// NewAuthenticator creates an authenticator. m may be nil.
func NewAuthenticator(
	admins repository.AdminRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	attempts AttemptStore,
	m *metrics.Metrics,
) *Authenticator {
	return &Authenticator{
		admins:    admins,
		employees: employees,
		attempts:  attempts,
		metrics:   m,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// equalizeTiming burns one bcrypt comparison so unknown usernames cost the same as wrong passwords
func equalizeTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = HashPassword("not-a-real-password", DefaultBcryptCost)
	})
	CheckPassword(dummyHash, password)
}

// Authenticate checks username and password for role. Unknown users and wrong
// passwords both fail with ErrInvalidCredentials. A locked account fails with
// a RateLimitedError even when the password is correct.
func (a *Authenticator) Authenticate(ctx context.Context, role models.Role, username, password string) (*Identity, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be admin or employee")
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		a.metrics.RecordLogin(string(role), metrics.LoginInvalid)
		return nil, apperrors.ErrInvalidCredentials
	}

	key := LockoutKey(role, username)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"role":     role,
		"username": username,
	})

	remaining, err := a.attempts.Locked(ctx, key)
	if err != nil {
		a.metrics.RecordLogin(string(role), metrics.LoginError)
		return nil, err
	}
	if remaining > 0 {
		a.metrics.RecordLogin(string(role), metrics.LoginLocked)
		log.Warn("Login refused, account is locked")
		return nil, &apperrors.RateLimitedError{RetryAfter: remaining}
	}

	p, err := a.lookup(ctx, role, username)
	if err != nil && !apperrors.IsNotFound(err) {
		a.metrics.RecordLogin(string(role), metrics.LoginError)
		log.WithError(err).Error("Login lookup failed")
		return nil, err
	}

	if p == nil {
		equalizeTiming(password)
		return nil, a.fail(ctx, role, key, log)
	}
	if !CheckPassword(p.hash, password) {
		return nil, a.fail(ctx, role, key, log)
	}

	if err := a.attempts.Reset(ctx, key); err != nil {
		log.WithError(err).Warn("Failed to reset login failures")
	}
	a.metrics.RecordLogin(string(role), metrics.LoginSuccess)
	log.Info("Login succeeded")

	identity := p.identity
	return &identity, nil
}

func (a *Authenticator) fail(ctx context.Context, role models.Role, key string, log *logger.Logger) error {
	lockedFor, err := a.attempts.Fail(ctx, key)
	if err != nil {
		a.metrics.RecordLogin(string(role), metrics.LoginError)
		return err
	}
	a.metrics.RecordLogin(string(role), metrics.LoginInvalid)
	if lockedFor > 0 {
		log.WithField("locked_for", lockedFor.String()).Warn("Account locked after repeated login failures")
	} else {
		log.Warn("Login failed")
	}
	return apperrors.ErrInvalidCredentials
}

// lookup tries the username as typed, then lower-cased
func (a *Authenticator) lookup(ctx context.Context, role models.Role, username string) (*principal, error) {
	p, err := a.find(ctx, role, username)
	if apperrors.IsNotFound(err) {
		if lower := strings.ToLower(username); lower != username {
			p, err = a.find(ctx, role, lower)
		}
	}
	return p, err
}

func (a *Authenticator) find(ctx context.Context, role models.Role, username string) (*principal, error) {
	if role == models.RoleAdmin {
		admin, err := a.admins.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		return &principal{
			identity: Identity{
				Role:       role,
				ID:         admin.ID,
				Name:       admin.Name,
				Username:   admin.Username,
				Credential: CredentialStamp(admin.PasswordHash),
			},
			hash:     admin.PasswordHash,
		}, nil
	}

	employee, err := a.employees.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &principal{
		identity: Identity{
			Role:       role,
			ID:         employee.ID,
			Name:       employee.Name,
			Username:   employee.Username,
			EmployeeID: employee.EmployeeID,
			Credential: CredentialStamp(employee.PasswordHash),
		},
		hash: employee.PasswordHash,
	}, nil
}
