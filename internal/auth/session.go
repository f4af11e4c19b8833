package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookieName is the cookie carrying the signed session
	SessionCookieName = "pt_session"
	// DefaultSessionTTL is how long a session stays valid
	DefaultSessionTTL = 7 * 24 * time.Hour

	sessionIssuer = "parts-tracking-backend"
)

// SessionClaims represents the JWT claims of a session
type SessionClaims struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	EmployeeID int    `json:"employee_id,omitempty"`
	Credential string `json:"crd,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the claims back into the principal they were issued for
func (c *SessionClaims) Identity() (*Identity, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, apperrors.ErrSessionInvalid
	}
	role := models.Role(c.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrSessionInvalid
	}
	return &Identity{
		Role:       role,
		ID:         id,
		Name:       c.Name,
		Username:   c.Username,
		EmployeeID: c.EmployeeID,
		Credential: c.Credential,
	}, nil
}

// SessionManager issues and verifies session tokens and their cookies
type SessionManager struct {
	secret       []byte
	ttl          time.Duration
	secureCookie bool
	now          func() time.Time
}

// NewSessionManager creates a session manager. secureCookie forces the Secure flag.
func NewSessionManager(secret string, ttl time.Duration, secureCookie bool) (*SessionManager, error) {
	if secret == "" {
		return nil, apperrors.ErrSessionSecretMissing
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		secret:       []byte(secret),
		ttl:          ttl,
		secureCookie: secureCookie,
		now:          time.Now,
	}, nil
}

// TTL returns the session lifetime
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a session token for identity
func (m *SessionManager) Issue(identity *Identity) (string, error) {
	now := m.now()
	claims := &SessionClaims{
		Role:       string(identity.Role),
		Name:       identity.Name,
		Username:   identity.Username,
		EmployeeID: identity.EmployeeID,
		Credential: identity.Credential,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
			Subject:   identity.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and returns the identity inside it
func (m *SessionManager) Parse(tokenString string) (*Identity, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrSessionInvalid
	}
	return claims.Identity()
}

// SetCookie writes the session cookie. It is Secure when the request came over TLS.
func (m *SessionManager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, int(m.ttl.Seconds()), "/", "", m.isSecure(c), true)
}

// ClearCookie expires the session cookie
func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.isSecure(c), true)
}

func (m *SessionManager) isSecure(c *gin.Context) bool {
	if m.secureCookie || c.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
}

// TokenFromRequest returns the session token from the cookie or a Bearer header
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
