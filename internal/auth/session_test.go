package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() *Identity {
	return &Identity{
		Role:       models.RoleEmployee,
		ID:         uuid.New(),
		Name:       "Ravi Kumar",
		Username:   "ravi",
		EmployeeID: 1001,
		Credential: CredentialStamp("$2a$04$ravi"),
	}
}

func TestNewSessionManager(t *testing.T) {
	_, err := NewSessionManager("", time.Hour, false)
	assert.ErrorIs(t, err, apperrors.ErrSessionSecretMissing)

	m, err := NewSessionManager("secret", 0, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionTTL, m.TTL())
}

func TestSessionIssueAndParse(t *testing.T) {
	m, err := NewSessionManager("test-signing-key", time.Hour, false)
	require.NoError(t, err)

	identity := testIdentity()
	token, err := m.Issue(identity)
	require.NoError(t, err)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestSessionParseRejects(t *testing.T) {
	m, err := NewSessionManager("test-signing-key", time.Hour, false)
	require.NoError(t, err)
	token, err := m.Issue(testIdentity())
	require.NoError(t, err)

	t.Run("expired token", func(t *testing.T) {
		expired, err := NewSessionManager("test-signing-key", time.Hour, false)
		require.NoError(t, err)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = expired.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewSessionManager("another-key", time.Hour, false)
		require.NoError(t, err)

		_, err = other.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := m.Parse(token + "x")
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("unsigned token", func(t *testing.T) {
		claims := &SessionClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString(), Issuer: sessionIssuer}}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(unsigned)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("unknown role", func(t *testing.T) {
		bad := testIdentity()
		bad.Role = models.Role("root")
		forged, err := m.Issue(bad)
		require.NoError(t, err)

		_, err = m.Parse(forged)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})
}

func TestSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("plain http", func(t *testing.T) {
		m, err := NewSessionManager("test-signing-key", DefaultSessionTTL, false)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/employee/login", nil)
		m.SetCookie(c, "token-value")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, SessionCookieName, cookie.Name)
		assert.Equal(t, "token-value", cookie.Value)
		assert.Equal(t, 7*24*60*60, cookie.MaxAge)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
	})

	t.Run("forwarded https", func(t *testing.T) {
		m, err := NewSessionManager("test-signing-key", DefaultSessionTTL, false)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/employee/login", nil)
		c.Request.Header.Set("X-Forwarded-Proto", "https")
		m.SetCookie(c, "token-value")

		assert.True(t, rec.Result().Cookies()[0].Secure)
	})

	t.Run("forced secure and clear", func(t *testing.T) {
		m, err := NewSessionManager("test-signing-key", DefaultSessionTTL, true)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		m.ClearCookie(c)

		cookie := rec.Result().Cookies()[0]
		assert.True(t, cookie.Secure)
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
	})
}
