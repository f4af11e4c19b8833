package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"parts-tracking-backend/internal/api/handlers"
	apperrors "parts-tracking-backend/internal/errors"
	"parts-tracking-backend/internal/mocks"
	"parts-tracking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SetupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockAdminSv *mocks.MockAdminServiceInterface
	router      *gin.Engine
}

func (suite *SetupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAdminSv = mocks.NewMockAdminServiceInterface(suite.ctrl)
	handler := handlers.NewSetupHandler(suite.mockAdminSv)

	suite.router = gin.New()
	suite.router.GET("/api/v1/setup/status", handler.Status)
	suite.router.POST("/api/v1/setup", handler.Setup)
}

func (suite *SetupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SetupHandlerTestSuite) TestStatus() {
	suite.mockAdminSv.EXPECT().SetupStatus(gomock.Any()).Return(&service.SetupStatusResponse{Configured: false}, nil)

	w := serve(suite.router, request(suite.T(), nil, nil, http.MethodGet, "/api/v1/setup/status", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"configured":false}`, w.Body.String())
}

func (suite *SetupHandlerTestSuite) TestSetup_CreatesFirstAdmin() {
	body := map[string]string{
		"name":             "Store Admin",
		"username":         "admin",
		"password":         "secret123",
		"confirm_password": "secret123",
	}
	suite.mockAdminSv.EXPECT().SetupFirstAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.SetupRequest) (*service.AdminResponse, error) {
			assert.Equal(suite.T(), "admin", req.Username)
			assert.Equal(suite.T(), "secret123", req.ConfirmPassword)
			return &service.AdminResponse{ID: uuid.New(), Name: req.Name, Username: req.Username}, nil
		})

	w := serve(suite.router, request(suite.T(), nil, nil, http.MethodPost, "/api/v1/setup", body))

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "secret123")
}

func (suite *SetupHandlerTestSuite) TestSetup_AlreadyConfigured() {
	suite.mockAdminSv.EXPECT().SetupFirstAdmin(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrAdminAlreadyConfigured)

	w := serve(suite.router, request(suite.T(), nil, nil, http.MethodPost, "/api/v1/setup", map[string]string{"username": "admin"}))

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func TestSetupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SetupHandlerTestSuite))
}
