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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutes sets up the routes for testing
func (suite *ProjectHandlerTestSuite) setupRoutes() {
	projects := suite.router.Group("/api/projects", withTestUser())
	projects.GET("", suite.handler.ListProjects)
	projects.POST("", suite.handler.CreateProject)
	projects.GET("/:projectId", suite.handler.GetProject)
	projects.PUT("/:projectId", suite.handler.UpdateProject)
	projects.DELETE("/:projectId", suite.handler.DeleteProject)
	projects.GET("/:projectId/apps", suite.handler.GetProjectApps)
	projects.POST("/:projectId/apps/:appId", suite.handler.AddApp)
	projects.DELETE("/:projectId/apps/:appId", suite.handler.RemoveApp)
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	projects := []models.ProjectWithAppCount{
		{Project: models.Project{BaseModel: models.BaseModel{ID: "p1"}, Name: "Demo", Status: models.ProjectStatusDraft}, AppCount: 2},
	}
	suite.mockService.EXPECT().GetUserProjects(gomock.Any(), "user-1").Return(projects, nil)

	w := doRequest(suite.router, http.MethodGet, "/api/projects", "user-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope(suite.T(), w)
	suite.True(env.Success)
	var data []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Len(data, 1)
	suite.Equal("p1", data[0]["id"])
	suite.Equal(float64(2), data[0]["appCount"])
	suite.Equal("draft", data[0]["status"])
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Empty() {
	suite.mockService.EXPECT().GetUserProjects(gomock.Any(), "user-1").Return([]models.ProjectWithAppCount{}, nil)

	w := doRequest(suite.router, http.MethodGet, "/api/projects", "user-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true,"data":[]}`, w.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestMissingUser() {
	w := doRequest(suite.router, http.MethodGet, "/api/projects", "", nil)

	requireErrorStatus(suite.T(), w, http.StatusUnauthorized)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("created", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateProject(gomock.Any(), "user-1", &service.CreateProjectRequest{Name: "Demo", Description: "d"}).
			Return(&models.ProjectWithAppCount{Project: models.Project{BaseModel: models.BaseModel{ID: "p1"}, Name: "Demo", Status: models.ProjectStatusDraft}}, nil)

		w := doRequest(suite.router, http.MethodPost, "/api/projects", "user-1", map[string]string{"name": "Demo", "description": "d"})

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"appCount":0`)
	})

	suite.T().Run("invalid JSON", func(t *testing.T) {
		w := doRequest(suite.router, http.MethodPost, "/api/projects", "user-1", "invalid json")

		requireErrorStatus(t, w, http.StatusBadRequest)
	})

	suite.T().Run("validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateProject(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required"))

		w := doRequest(suite.router, http.MethodPost, "/api/projects", "user-1", map[string]string{"name": ""})

		env := requireErrorStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, env.Error.Message, "name")
	})

	suite.T().Run("storage failure hides details", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateProject(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, errors.New("failed to create project: pq: connection refused"))

		w := doRequest(suite.router, http.MethodPost, "/api/projects", "user-1", map[string]string{"name": "Demo"})

		env := requireErrorStatus(t, w, http.StatusInternalServerError)
		assert.NotContains(t, env.Error.Message, "connection refused")
	})
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	suite.mockService.EXPECT().GetProject(gomock.Any(), "user-2", "p1").Return(nil, apperrors.ErrProjectNotFound)

	w := doRequest(suite.router, http.MethodGet, "/api/projects/p1", "user-2", nil)

	env := requireErrorStatus(suite.T(), w, http.StatusNotFound)
	suite.Equal("project not found", env.Error.Message)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_PassesOnlySuppliedFields() {
	suite.mockService.EXPECT().
		UpdateProject(gomock.Any(), "user-1", "p1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, req *service.UpdateProjectRequest) (*models.ProjectWithAppCount, error) {
			suite.Nil(req.Name)
			suite.Nil(req.Description)
			suite.Require().NotNil(req.Status)
			suite.Equal(models.ProjectStatusArchived, *req.Status)
			return &models.ProjectWithAppCount{Project: models.Project{Status: models.ProjectStatusArchived}}, nil
		})

	w := doRequest(suite.router, http.MethodPut, "/api/projects/p1", "user-1", map[string]string{"status": "archived"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.mockService.EXPECT().DeleteProject(gomock.Any(), "user-1", "p1").Return(nil)

	w := doRequest(suite.router, http.MethodDelete, "/api/projects/p1", "user-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestProjectApps() {
	suite.T().Run("add", func(t *testing.T) {
		suite.mockService.EXPECT().AddAppToProject(gomock.Any(), "user-1", "p1", "a1").Return(nil)

		w := doRequest(suite.router, http.MethodPost, "/api/projects/p1/apps/a1", "user-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("add foreign app", func(t *testing.T) {
		suite.mockService.EXPECT().AddAppToProject(gomock.Any(), "user-1", "p1", "a9").Return(apperrors.ErrAppNotFound)

		w := doRequest(suite.router, http.MethodPost, "/api/projects/p1/apps/a9", "user-1", nil)
		env := requireErrorStatus(t, w, http.StatusNotFound)
		assert.Equal(t, "app not found", env.Error.Message)
	})

	suite.T().Run("list", func(t *testing.T) {
		suite.mockService.EXPECT().GetProjectApps(gomock.Any(), "user-1", "p1").
			Return([]models.App{{BaseModel: models.BaseModel{ID: "a1"}, Name: "App"}}, nil)

		w := doRequest(suite.router, http.MethodGet, "/api/projects/p1/apps", "user-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Contains(t, string(env.Data), `"id":"a1"`)
	})

	suite.T().Run("list for deleted project", func(t *testing.T) {
		suite.mockService.EXPECT().GetProjectApps(gomock.Any(), "user-1", "gone").Return(nil, apperrors.ErrProjectNotFound)

		w := doRequest(suite.router, http.MethodGet, "/api/projects/gone/apps", "user-1", nil)
		requireErrorStatus(t, w, http.StatusNotFound)
	})

	suite.T().Run("remove", func(t *testing.T) {
		suite.mockService.EXPECT().RemoveAppFromProject(gomock.Any(), "user-1", "p1", "a1").Return(nil)

		w := doRequest(suite.router, http.MethodDelete, "/api/projects/p1/apps/a1", "user-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
