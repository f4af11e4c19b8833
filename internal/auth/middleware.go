package auth

import (
	"net/http"
	"time"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "auth_identity"

// PrincipalCheck decides whether the principal of a valid session may still
// act. A non-nil error ends the session with 401.
type PrincipalCheck func(identity *Identity) error

// EmployeeLookup reads current employee records
type EmployeeLookup interface {
	Employee(id uuid.UUID) (models.Employee, bool)
	LoadedAt() time.Time
}

// CurrentEmployees revokes employee sessions whose account was deleted or
// whose password changed after the session was issued. Nothing is revoked
// before employees have been loaded.
func CurrentEmployees(employees EmployeeLookup) PrincipalCheck {
	return func(identity *Identity) error {
		if identity.Role != models.RoleEmployee || employees.LoadedAt().IsZero() {
			return nil
		}
		employee, ok := employees.Employee(identity.ID)
		if !ok || CredentialStamp(employee.PasswordHash) != identity.Credential {
			return apperrors.ErrSessionRevoked
		}
		return nil
	}
}

// AuthMiddleware gates routes on a valid session and role
type AuthMiddleware struct {
	sessions *SessionManager
	check    PrincipalCheck
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(sessions *SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// WithPrincipalCheck makes RequireSession run check on every session
func (m *AuthMiddleware) WithPrincipalCheck(check PrincipalCheck) *AuthMiddleware {
	m.check = check
	return m
}

// RequireSession rejects requests without a valid session with 401
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrSessionMissing.Error()})
			return
		}

		identity, err := m.sessions.Parse(token)
		if err == nil && m.check != nil {
			err = m.check(identity)
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(identityKey, identity)
		ctx := logger.ContextWithPrincipal(c.Request.Context(), string(identity.Role), identity.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects sessions of any other role with 403. It must run after RequireSession.
func (m *AuthMiddleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrSessionMissing.Error()})
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrRoleRequired.Error()})
			return
		}
		c.Next()
	}
}

// GetIdentity is a helper function to extract the session identity from context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok
}
