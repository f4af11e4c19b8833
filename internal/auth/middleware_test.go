package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parts-tracking-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGatedRouter(t *testing.T) (*gin.Engine, *SessionManager) {
	gin.SetMode(gin.TestMode)
	sessions, err := NewSessionManager("test-signing-key", time.Hour, false)
	require.NoError(t, err)
	mw := NewAuthMiddleware(sessions)

	router := gin.New()
	admin := router.Group("/admin", mw.RequireSession(), mw.RequireRole(models.RoleAdmin))
	admin.GET("/ping", func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user": identity.Username})
	})
	employee := router.Group("/me", mw.RequireSession(), mw.RequireRole(models.RoleEmployee))
	employee.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/open", mw.RequireRole(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, sessions
}

func TestRequireSession(t *testing.T) {
	router, sessions := setupGatedRouter(t)

	admin := testIdentity()
	admin.Role = models.RoleAdmin
	admin.Username = "admin"
	token, err := sessions.Issue(admin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		setup  func(r *http.Request)
		status int
	}{
		{name: "no session", path: "/admin/ping", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
		{name: "garbage cookie", path: "/admin/ping", setup: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		}, status: http.StatusUnauthorized},
		{name: "cookie", path: "/admin/ping", setup: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		}, status: http.StatusOK},
		{name: "bearer header", path: "/admin/ping", setup: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		}, status: http.StatusOK},
		{name: "wrong role", path: "/me/ping", setup: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		}, status: http.StatusForbidden},
		{name: "role without session", path: "/open", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user":"admin"}`, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

type employeeTable struct {
	loaded    time.Time
	employees map[uuid.UUID]models.Employee
}

func (t *employeeTable) Employee(id uuid.UUID) (models.Employee, bool) {
	e, ok := t.employees[id]
	return e, ok
}

func (t *employeeTable) LoadedAt() time.Time { return t.loaded }

func TestRequireSessionRevokesStaleEmployeeSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions, err := NewSessionManager("test-signing-key", time.Hour, false)
	require.NoError(t, err)

	hash, err := HashPassword("secret123", 4)
	require.NoError(t, err)
	employee := models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: 1001, Username: "ravi", PasswordHash: hash}
	table := &employeeTable{employees: map[uuid.UUID]models.Employee{employee.ID: employee}}

	mw := NewAuthMiddleware(sessions).WithPrincipalCheck(CurrentEmployees(table))
	router := gin.New()
	router.GET("/ping", mw.RequireSession(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	issue := func(identity *Identity) string {
		token, err := sessions.Issue(identity)
		require.NoError(t, err)
		return token
	}
	call := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	current := issue(&Identity{Role: models.RoleEmployee, ID: employee.ID, Username: "ravi", Credential: CredentialStamp(hash)})
	admin := issue(&Identity{Role: models.RoleAdmin, ID: uuid.New(), Username: "admin"})

	// nothing is judged before the employee table has loaded
	assert.Equal(t, http.StatusNoContent, call(current).Code)

	table.loaded = time.Now()
	assert.Equal(t, http.StatusNoContent, call(current).Code)
	assert.Equal(t, http.StatusNoContent, call(admin).Code)

	newHash, err := HashPassword("n3wpass", 4)
	require.NoError(t, err)
	employee.PasswordHash = newHash
	table.employees[employee.ID] = employee
	rec := call(current)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "revoked")

	fresh := issue(&Identity{Role: models.RoleEmployee, ID: employee.ID, Username: "ravi", Credential: CredentialStamp(newHash)})
	assert.Equal(t, http.StatusNoContent, call(fresh).Code)

	delete(table.employees, employee.ID)
	assert.Equal(t, http.StatusUnauthorized, call(fresh).Code)
}

func TestCredentialStamp(t *testing.T) {
	assert.Empty(t, CredentialStamp(""))
	assert.Len(t, CredentialStamp("$2a$04$abc"), 16)
	assert.Equal(t, CredentialStamp("$2a$04$abc"), CredentialStamp("$2a$04$abc"))
	assert.NotEqual(t, CredentialStamp("$2a$04$abc"), CredentialStamp("$2a$04$abd"))
}
