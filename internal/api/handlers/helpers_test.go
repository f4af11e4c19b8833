package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "handler-test-secret"

func newSessions(t *testing.T) *auth.SessionManager {
	t.Helper()
	sessions, err := auth.NewSessionManager(testSessionSecret, time.Hour, false)
	require.NoError(t, err)
	return sessions
}

func adminIdentity() *auth.Identity {
	return &auth.Identity{Role: models.RoleAdmin, ID: uuid.New(), Name: "Store Admin", Username: "admin"}
}

func employeeIdentity() *auth.Identity {
	return &auth.Identity{Role: models.RoleEmployee, ID: uuid.New(), Name: "Ravi Kumar", Username: "ravi", EmployeeID: 1001}
}

// request builds a JSON request carrying a session cookie for identity when it is not nil
func request(t *testing.T, sessions *auth.SessionManager, identity *auth.Identity, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if identity != nil {
		token, err := sessions.Issue(identity)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
