package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"parts-tracking-backend/internal/api/handlers"
	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/database/models"
	"parts-tracking-backend/internal/mocks"
	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDashboardSv *mocks.MockDashboardServiceInterface
	mockExportSv    *mocks.MockExportServiceInterface
	sessions        *auth.SessionManager
	router          *gin.Engine
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDashboardSv = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.mockExportSv = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.sessions = newSessions(suite.T())
	handler := handlers.NewDashboardHandler(suite.mockDashboardSv, suite.mockExportSv)
	gate := auth.NewAuthMiddleware(suite.sessions)

	suite.router = gin.New()
	admin := suite.router.Group("/api/v1", gate.RequireSession(), gate.RequireRole(models.RoleAdmin))
	admin.GET("/dashboard", handler.Stats)
	admin.GET("/export/parts.xlsx", handler.ExportParts)
}

func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardHandlerTestSuite) TestStats() {
	suite.mockDashboardSv.EXPECT().Stats().Return(&service.DashboardStats{TotalParts: 6, AvailableParts: 1})

	w := serve(suite.router, request(suite.T(), suite.sessions, adminIdentity(), http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.DashboardStats
	decode(suite.T(), w, &got)
	assert.Equal(suite.T(), 6, got.TotalParts)
	assert.Equal(suite.T(), 1, got.AvailableParts)
}

func (suite *DashboardHandlerTestSuite) TestExportParts() {
	payload := []byte("PK\x03\x04workbook")
	suite.mockExportSv.EXPECT().ExportParts(gomock.Any()).
		Return(bytes.NewBuffer(payload), "parts_2026-10-19.xlsx", nil)

	w := serve(suite.router, request(suite.T(), suite.sessions, adminIdentity(), http.MethodGet, "/api/v1/export/parts.xlsx", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="parts_2026-10-19.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), payload, w.Body.Bytes())
}

func (suite *DashboardHandlerTestSuite) TestRequiresSession() {
	w := serve(suite.router, request(suite.T(), suite.sessions, nil, http.MethodGet, "/api/v1/dashboard", nil))
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = serve(suite.router, request(suite.T(), suite.sessions, employeeIdentity(), http.MethodGet, "/api/v1/export/parts.xlsx", nil))
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
