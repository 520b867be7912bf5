package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"workspace-backend/internal/api/handlers"
	"workspace-backend/internal/database/models"
	apperrors "workspace-backend/internal/errors"
	"workspace-backend/internal/mocks"
	"workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MCPServerHandlerTestSuite defines the test suite for MCPServerHandler
type MCPServerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMCPServerServiceInterface
	mockChecker *mocks.MockMCPHealthCheckerInterface
	handler     *handlers.MCPServerHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *MCPServerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMCPServerServiceInterface(suite.ctrl)
	suite.mockChecker = mocks.NewMockMCPHealthCheckerInterface(suite.ctrl)
	suite.handler = handlers.NewMCPServerHandler(suite.mockService, suite.mockChecker)
	suite.router = gin.New()

	mcp := suite.router.Group("/api/mcp", withTestUser())
	mcp.GET("", suite.handler.ListServers)
	mcp.POST("", suite.handler.CreateServer)
	mcp.GET("/:serverId", suite.handler.GetServer)
	mcp.PUT("/:serverId", suite.handler.UpdateServer)
	mcp.DELETE("/:serverId", suite.handler.DeleteServer)
	mcp.PATCH("/:serverId/toggle", suite.handler.ToggleServer)
	mcp.POST("/:serverId/test", suite.handler.TestServer)
}

// TearDownTest cleans up after each test
func (suite *MCPServerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MCPServerHandlerTestSuite) TestListServers() {
	suite.T().Run("all", func(t *testing.T) {
		suite.mockService.EXPECT().GetUserServers(gomock.Any(), "user-1").Return([]models.MCPServer{{Name: "a"}}, nil)

		w := doRequest(suite.router, http.MethodGet, "/api/mcp", "user-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("enabled only", func(t *testing.T) {
		suite.mockService.EXPECT().GetEnabledServers(gomock.Any(), "user-1").Return([]models.MCPServer{}, nil)

		w := doRequest(suite.router, http.MethodGet, "/api/mcp?enabled=true", "user-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func (suite *MCPServerHandlerTestSuite) TestCreateServer() {
	suite.T().Run("created", func(t *testing.T) {
		suite.mockService.EXPECT().CreateServer(gomock.Any(), "user-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *service.CreateMCPServerRequest) (*models.MCPServer, error) {
				assert.Equal(t, "Search", req.Name)
				assert.Equal(t, models.MCPTransportSSE, req.Transport)
				return &models.MCPServer{BaseModel: models.BaseModel{ID: "s1"}, Name: req.Name, Transport: req.Transport, Status: models.MCPStatusUnknown, Enabled: true}, nil
			})

		w := doRequest(suite.router, http.MethodPost, "/api/mcp", "user-1", map[string]string{
			"name": "Search", "url": "https://mcp.example.com", "transport": "sse",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		var server map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &server))
		assert.Equal(t, "unknown", server["status"])
		assert.Equal(t, true, server["enabled"])
		assert.Nil(t, server["lastChecked"])
	})

	suite.T().Run("foreign secret", func(t *testing.T) {
		suite.mockService.EXPECT().CreateServer(gomock.Any(), "user-1", gomock.Any()).Return(nil, apperrors.ErrSecretNotFound)

		w := doRequest(suite.router, http.MethodPost, "/api/mcp", "user-1", map[string]string{
			"name": "Search", "url": "https://mcp.example.com", "authSecretId": "sec-9",
		})
		requireErrorStatus(t, w, http.StatusNotFound)
	})

	suite.T().Run("invalid transport", func(t *testing.T) {
		suite.mockService.EXPECT().CreateServer(gomock.Any(), "user-1", gomock.Any()).Return(nil, apperrors.ErrInvalidTransport)

		w := doRequest(suite.router, http.MethodPost, "/api/mcp", "user-1", map[string]string{
			"name": "Search", "url": "https://mcp.example.com", "transport": "grpc",
		})
		requireErrorStatus(t, w, http.StatusBadRequest)
	})
}

func (suite *MCPServerHandlerTestSuite) TestUpdateServer_ExplicitNullSecret() {
	suite.mockService.EXPECT().UpdateServer(gomock.Any(), "user-1", "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, req *service.UpdateMCPServerRequest) (*models.MCPServer, error) {
			suite.True(req.AuthSecretID.Set)
			suite.Nil(req.AuthSecretID.Value)
			return &models.MCPServer{}, nil
		})

	w := doRequest(suite.router, http.MethodPut, "/api/mcp/s1", "user-1", `{"authSecretId": null}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MCPServerHandlerTestSuite) TestToggleAndDelete() {
	suite.mockService.EXPECT().ToggleServer(gomock.Any(), "user-1", "s1").Return(&models.MCPServer{Enabled: false}, nil)
	w := doRequest(suite.router, http.MethodPatch, "/api/mcp/s1/toggle", "user-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"enabled":false`)

	suite.mockService.EXPECT().DeleteServer(gomock.Any(), "user-2", "s1").Return(apperrors.ErrMCPServerNotFound)
	w = doRequest(suite.router, http.MethodDelete, "/api/mcp/s1", "user-2", nil)
	requireErrorStatus(suite.T(), w, http.StatusNotFound)
}

func (suite *MCPServerHandlerTestSuite) TestTestServer() {
	server := &models.MCPServer{BaseModel: models.BaseModel{ID: "s1"}, URL: "https://mcp.example.com"}

	testCases := []struct {
		name          string
		result        service.ProbeResult
		wantSuccess   bool
		wantLastError bool
	}{
		{
			name:        "connected",
			result:      service.ProbeResult{Status: models.MCPStatusConnected, Message: "Connected successfully (12ms)", LatencyMs: 12},
			wantSuccess: true,
		},
		{
			name:          "error status",
			result:        service.ProbeResult{Status: models.MCPStatusError, Message: "Server responded with status 503", LatencyMs: 5},
			wantLastError: true,
		},
		{
			name:          "unreachable",
			result:        service.ProbeResult{Status: models.MCPStatusDisconnected, Message: "dial tcp: connection refused"},
			wantLastError: true,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().GetServer(gomock.Any(), "user-1", "s1").Return(server, nil)
			suite.mockChecker.EXPECT().Check(gomock.Any(), server.URL).Return(tc.result)
			suite.mockService.EXPECT().
				UpdateServerStatus(gomock.Any(), "user-1", "s1", tc.result.Status, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, _ models.MCPConnectionStatus, errMsg *string) (*models.MCPServer, error) {
					if tc.wantLastError {
						require.NotNil(t, errMsg)
						assert.Equal(t, tc.result.Message, *errMsg)
					} else {
						assert.Nil(t, errMsg)
					}
					return server, nil
				})

			w := doRequest(suite.router, http.MethodPost, "/api/mcp/s1/test", "user-1", nil)

			require.Equal(t, http.StatusOK, w.Code)
			env := decodeEnvelope(t, w)
			var result handlers.ConnectionTestResponse
			require.NoError(t, json.Unmarshal(env.Data, &result))
			assert.Equal(t, tc.wantSuccess, result.Success)
			assert.Equal(t, tc.result.Status, result.Status)
			assert.Equal(t, tc.result.Message, result.Message)
			assert.Equal(t, tc.result.LatencyMs, result.LatencyMs)
		})
	}
}

func (suite *MCPServerHandlerTestSuite) TestTestServer_NotOwned() {
	suite.mockService.EXPECT().GetServer(gomock.Any(), "user-2", "s1").Return(nil, apperrors.ErrMCPServerNotFound)

	w := doRequest(suite.router, http.MethodPost, "/api/mcp/s1/test", "user-2", nil)

	requireErrorStatus(suite.T(), w, http.StatusNotFound)
}

func (suite *MCPServerHandlerTestSuite) TestTestServer_PersistFailure() {
	server := &models.MCPServer{URL: "https://mcp.example.com"}
	suite.mockService.EXPECT().GetServer(gomock.Any(), "user-1", "s1").Return(server, nil)
	suite.mockChecker.EXPECT().Check(gomock.Any(), server.URL).Return(service.ProbeResult{Status: models.MCPStatusConnected})
	suite.mockService.EXPECT().UpdateServerStatus(gomock.Any(), "user-1", "s1", models.MCPStatusConnected, nil).
		Return(nil, errors.New("failed to update MCP server status: timeout"))

	w := doRequest(suite.router, http.MethodPost, "/api/mcp/s1/test", "user-1", nil)

	requireErrorStatus(suite.T(), w, http.StatusInternalServerError)
}

func TestMCPServerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MCPServerHandlerTestSuite))
}
