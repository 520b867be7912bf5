package handlers

import (
	"net/http"

	"workspace-backend/internal/api/response"
	"workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description List the caller's projects, most recently updated first, with the number of linked apps
// @Tags projects
// @Produce json
// @Success 200 {object} response.Envelope{data=[]models.ProjectWithAppCount} "Projects of the caller"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	projects, err := h.projectService.GetUserProjects(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// CreateProject handles POST /api/projects
// @Summary Create a new project
// @Description Create a draft project owned by the caller
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} response.Envelope{data=models.ProjectWithAppCount} "Successfully created project"
// @Failure 400 {object} response.Envelope "Invalid request body"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Security BearerAuth
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, project)
}

// GetProject handles GET /api/projects/:projectId
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} response.Envelope{data=models.ProjectWithAppCount} "Successfully retrieved project"
// @Failure 404 {object} response.Envelope "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), userID, c.Param("projectId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// UpdateProject handles PUT /api/projects/:projectId
// @Summary Update project
// @Description Partially update a project; omitted fields are left unchanged
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.ProjectWithAppCount} "Successfully updated project"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), userID, c.Param("projectId"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:projectId
// @Summary Delete project
// @Description Delete a project and all of its app links
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} response.Envelope "Project deleted"
// @Failure 404 {object} response.Envelope "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, c.Param("projectId")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// GetProjectApps handles GET /api/projects/:projectId/apps
// @Summary List project apps
// @Description List the apps linked to a project in the order they were added
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} response.Envelope{data=[]models.App} "Linked apps"
// @Failure 404 {object} response.Envelope "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/apps [get]
func (h *ProjectHandler) GetProjectApps(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	apps, err := h.projectService.GetProjectApps(c.Request.Context(), userID, c.Param("projectId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, apps)
}

// AddApp handles POST /api/projects/:projectId/apps/:appId
// @Summary Link an app to a project
// @Description Link one of the caller's apps to one of the caller's projects; linking twice is a no-op
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Param appId path string true "App ID"
// @Success 200 {object} response.Envelope "App linked"
// @Failure 404 {object} response.Envelope "Project or app not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/apps/{appId} [post]
func (h *ProjectHandler) AddApp(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.projectService.AddAppToProject(c.Request.Context(), userID, c.Param("projectId"), c.Param("appId")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// RemoveApp handles DELETE /api/projects/:projectId/apps/:appId
// @Summary Unlink an app from a project
// @Description Remove the link between a project and an app; removing a missing link is a no-op
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Param appId path string true "App ID"
// @Success 200 {object} response.Envelope "App unlinked"
// @Failure 404 {object} response.Envelope "Project not found"
// @Security BearerAuth
// @Router /api/projects/{projectId}/apps/{appId} [delete]
func (h *ProjectHandler) RemoveApp(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.projectService.RemoveAppFromProject(c.Request.Context(), userID, c.Param("projectId"), c.Param("appId")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
