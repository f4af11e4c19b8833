package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/metrics"
	"parts-tracking-backend/internal/testutils"
	"parts-tracking-backend/internal/testutils/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

type AuthenticatorTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *fakeClock
	store    *memstore.Store
	metrics  *metrics.Metrics
	auth     *Authenticator
	employee *models.Employee
	admin    *models.Admin
}

func (s *AuthenticatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = newFakeClock()
	s.store = memstore.New()
	s.metrics = metrics.New()

	repos := s.store.Repositories()
	factories := testutils.NewFactorySet()
	s.employee = factories.Employee.WithUsername("ravi")
	s.admin = factories.Admin.Create()
	require.NoError(s.T(), repos.Employees.Create(s.ctx, s.employee))
	require.NoError(s.T(), repos.Admins.Create(s.ctx, s.admin))

	attempts := NewMemoryAttemptStore(DefaultLockoutPolicy, s.clock.Now)
	s.auth = NewAuthenticator(repos.Admins, repos.Employees, attempts, s.metrics)
}

func (s *AuthenticatorTestSuite) TestEmployeeLogin() {
	identity, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)

	s.Require().NoError(err)
	s.Equal(models.RoleEmployee, identity.Role)
	s.Equal(s.employee.ID, identity.ID)
	s.Equal(s.employee.EmployeeID, identity.EmployeeID)
	s.Equal(CredentialStamp(s.employee.PasswordHash), identity.Credential)
	s.assertLogins("employee", metrics.LoginSuccess, 1)
}

func (s *AuthenticatorTestSuite) TestAdminLogin() {
	identity, err := s.auth.Authenticate(s.ctx, models.RoleAdmin, "admin", testutils.TestPassword)

	s.Require().NoError(err)
	s.True(identity.IsAdmin())
	s.Equal(s.admin.ID, identity.ID)
}

func (s *AuthenticatorTestSuite) TestUsernameFallsBackToLowerCase() {
	identity, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "  RAVI ", testutils.TestPassword)

	s.Require().NoError(err)
	s.Equal("ravi", identity.Username)
}

func (s *AuthenticatorTestSuite) TestRoleTablesAreSeparate() {
	_, err := s.auth.Authenticate(s.ctx, models.RoleAdmin, "ravi", testutils.TestPassword)
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = s.auth.Authenticate(s.ctx, models.RoleEmployee, "admin", testutils.TestPassword)
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthenticatorTestSuite) TestUnknownUserAndWrongPasswordLookAlike() {
	_, unknownErr := s.auth.Authenticate(s.ctx, models.RoleEmployee, "nobody", "whatever")
	_, wrongErr := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", "wrong-password")

	s.ErrorIs(unknownErr, apperrors.ErrInvalidCredentials)
	s.ErrorIs(wrongErr, apperrors.ErrInvalidCredentials)
	s.Equal(unknownErr.Error(), wrongErr.Error())
}

func (s *AuthenticatorTestSuite) TestInvalidRole() {
	_, err := s.auth.Authenticate(s.ctx, models.Role("root"), "ravi", testutils.TestPassword)
	s.True(apperrors.IsValidation(err))
}

func (s *AuthenticatorTestSuite) TestLockoutAfterFiveFailures() {
	for i := 0; i < 5; i++ {
		_, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", "wrong-password")
		s.Require().ErrorIs(err, apperrors.ErrInvalidCredentials, "attempt %d", i+1)
	}

	_, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	rateErr, ok := apperrors.IsRateLimited(err)
	s.Require().True(ok, "expected rate limited, got %v", err)
	s.Equal(15*time.Minute, rateErr.RetryAfter)
	s.assertLogins("employee", metrics.LoginLocked, 1)

	s.clock.Advance(10 * time.Minute)
	_, err = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	rateErr, ok = apperrors.IsRateLimited(err)
	s.Require().True(ok)
	s.Equal(5*time.Minute, rateErr.RetryAfter)

	s.clock.Advance(5*time.Minute + time.Second)
	identity, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	s.Require().NoError(err)
	s.Equal(s.employee.ID, identity.ID)

	// counter was reset, a single failure does not lock again
	_, err = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", "wrong-password")
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	_, err = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	s.NoError(err)
}

func (s *AuthenticatorTestSuite) TestLockoutIgnoresUsernameCase() {
	for _, name := range []string{"ravi", "Ravi", "RAVI", "rAvI", "ravI"} {
		_, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, name, "wrong-password")
		s.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
	}

	_, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	_, ok := apperrors.IsRateLimited(err)
	s.True(ok)
}

func (s *AuthenticatorTestSuite) TestLockoutAppliesToAdmins() {
	for i := 0; i < 5; i++ {
		_, _ = s.auth.Authenticate(s.ctx, models.RoleAdmin, "admin", "wrong-password")
	}

	_, err := s.auth.Authenticate(s.ctx, models.RoleAdmin, "admin", testutils.TestPassword)
	_, ok := apperrors.IsRateLimited(err)
	s.True(ok)

	// an employee with the same name is not affected
	_, err = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	s.NoError(err)
}

func (s *AuthenticatorTestSuite) TestSuccessResetsCounter() {
	for i := 0; i < 4; i++ {
		_, _ = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", "wrong-password")
	}
	_, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	s.Require().NoError(err)

	for i := 0; i < 4; i++ {
		_, _ = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", "wrong-password")
	}
	_, err = s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	s.NoError(err)
}

func (s *AuthenticatorTestSuite) TestLookupFailureIsReturned() {
	s.store.FailOn("employees.GetByUsername", apperrors.NewConnectionError("get employee by username", assert.AnError))

	_, err := s.auth.Authenticate(s.ctx, models.RoleEmployee, "ravi", testutils.TestPassword)
	s.True(apperrors.IsConnection(err))
	s.assertLogins("employee", metrics.LoginError, 1)
}

func (s *AuthenticatorTestSuite) assertLogins(role, outcome string, n int) {
	rec := httptest.NewRecorder()
	s.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Contains(rec.Body.String(), fmt.Sprintf(`parts_auth_attempts_total{outcome="%s",role="%s"} %d`, outcome, role, n))
}

func TestAuthenticatorTestSuite(t *testing.T) {
	suite.Run(t, new(AuthenticatorTestSuite))
}

func TestMemoryAttemptStoreCounterExpires(t *testing.T) {
	clock := newFakeClock()
	store := NewMemoryAttemptStore(LockoutPolicy{MaxAttempts: 2, LockDuration: time.Minute, CounterTTL: time.Hour}, clock.Now)
	ctx := context.Background()

	lockedFor, err := store.Fail(ctx, "employee:ravi")
	require.NoError(t, err)
	assert.Zero(t, lockedFor)

	clock.Advance(2 * time.Hour)
	lockedFor, err = store.Fail(ctx, "employee:ravi")
	require.NoError(t, err)
	assert.Zero(t, lockedFor, "expired counter starts over")

	lockedFor, err = store.Fail(ctx, "employee:ravi")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, lockedFor)

	remaining, err := store.Locked(ctx, "employee:ravi")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, remaining)

	require.NoError(t, store.Reset(ctx, "employee:ravi"))
	remaining, err = store.Locked(ctx, "employee:ravi")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestLockoutKey(t *testing.T) {
	assert.Equal(t, "employee:ravi", LockoutKey(models.RoleEmployee, " Ravi "))
	assert.Equal(t, "admin:ravi", LockoutKey(models.RoleAdmin, "RAVI"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}
