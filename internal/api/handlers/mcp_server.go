package handlers

import (
	"net/http"

	"workspace-backend/internal/api/response"
	"workspace-backend/internal/database/models"
	"workspace-backend/internal/logger"
	"workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MCPServerHandler handles HTTP requests for MCP server configurations
type MCPServerHandler struct {
	serverService service.MCPServerServiceInterface
	checker       service.MCPHealthCheckerInterface
}

// NewMCPServerHandler creates a new MCP server handler
func NewMCPServerHandler(serverService service.MCPServerServiceInterface, checker service.MCPHealthCheckerInterface) *MCPServerHandler {
	return &MCPServerHandler{
		serverService: serverService,
		checker:       checker,
	}
}

// ConnectionTestResponse is the outcome of a connection test
type ConnectionTestResponse struct {
	Success   bool                       `json:"success" example:"true"`
	Status    models.MCPConnectionStatus `json:"status" example:"connected"`
	Message   string                     `json:"message" example:"Connected successfully (42ms)"`
	LatencyMs int64                      `json:"latencyMs" example:"42"`
}

// ListServers handles GET /api/mcp
// @Summary List MCP servers
// @Description List the caller's MCP servers, newest first. With enabled=true only enabled servers are returned.
// @Tags mcp
// @Produce json
// @Param enabled query bool false "Only enabled servers"
// @Success 200 {object} response.Envelope{data=[]models.MCPServer} "MCP servers of the caller"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Security BearerAuth
// @Router /api/mcp [get]
func (h *MCPServerHandler) ListServers(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var (
		servers []models.MCPServer
		err     error
	)
	if c.Query("enabled") == "true" {
		servers, err = h.serverService.GetEnabledServers(c.Request.Context(), userID)
	} else {
		servers, err = h.serverService.GetUserServers(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, servers)
}

// CreateServer handles POST /api/mcp
// @Summary Register an MCP server
// @Tags mcp
// @Accept json
// @Produce json
// @Param server body service.CreateMCPServerRequest true "Server configuration"
// @Success 201 {object} response.Envelope{data=models.MCPServer} "Successfully created server"
// @Failure 400 {object} response.Envelope "Invalid request body"
// @Failure 404 {object} response.Envelope "Secret not found"
// @Security BearerAuth
// @Router /api/mcp [post]
func (h *MCPServerHandler) CreateServer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateMCPServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	server, err := h.serverService.CreateServer(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, server)
}

// GetServer handles GET /api/mcp/:serverId
// @Summary Get MCP server by ID
// @Tags mcp
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {object} response.Envelope{data=models.MCPServer} "Successfully retrieved server"
// @Failure 404 {object} response.Envelope "Server not found"
// @Security BearerAuth
// @Router /api/mcp/{serverId} [get]
func (h *MCPServerHandler) GetServer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	server, err := h.serverService.GetServer(c.Request.Context(), userID, c.Param("serverId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, server)
}

// UpdateServer handles PUT /api/mcp/:serverId
// @Summary Update MCP server
// @Description Partially update a server configuration; an explicit null authSecretId clears it
// @Tags mcp
// @Accept json
// @Produce json
// @Param serverId path string true "Server ID"
// @Param server body service.UpdateMCPServerRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.MCPServer} "Successfully updated server"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Server or secret not found"
// @Security BearerAuth
// @Router /api/mcp/{serverId} [put]
func (h *MCPServerHandler) UpdateServer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.UpdateMCPServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	server, err := h.serverService.UpdateServer(c.Request.Context(), userID, c.Param("serverId"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, server)
}

// DeleteServer handles DELETE /api/mcp/:serverId
// @Summary Delete MCP server
// @Tags mcp
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {object} response.Envelope "Server deleted"
// @Failure 404 {object} response.Envelope "Server not found"
// @Security BearerAuth
// @Router /api/mcp/{serverId} [delete]
func (h *MCPServerHandler) DeleteServer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.serverService.DeleteServer(c.Request.Context(), userID, c.Param("serverId")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// ToggleServer handles PATCH /api/mcp/:serverId/toggle
// @Summary Enable or disable an MCP server
// @Tags mcp
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {object} response.Envelope{data=models.MCPServer} "Server with flipped enabled flag"
// @Failure 404 {object} response.Envelope "Server not found"
// @Security BearerAuth
// @Router /api/mcp/{serverId}/toggle [patch]
func (h *MCPServerHandler) ToggleServer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	server, err := h.serverService.ToggleServer(c.Request.Context(), userID, c.Param("serverId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, server)
}

// TestServer handles POST /api/mcp/:serverId/test
// @Summary Test MCP server connection
// @Description Probe the server's health endpoint once and record the outcome. Probe failures are reported in the body, not as HTTP errors.
// @Tags mcp
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {object} response.Envelope{data=ConnectionTestResponse} "Outcome of the connection test"
// @Failure 404 {object} response.Envelope "Server not found"
// @Security BearerAuth
// @Router /api/mcp/{serverId}/test [post]
func (h *MCPServerHandler) TestServer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	serverID := c.Param("serverId")

	server, err := h.serverService.GetServer(ctx, userID, serverID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := h.checker.Check(ctx, server.URL)

	var lastError *string
	if !result.Success() {
		msg := result.Message
		lastError = &msg
	}
	if _, err := h.serverService.UpdateServerStatus(ctx, userID, serverID, result.Status, lastError); err != nil {
		respondServiceError(c, err)
		return
	}

	logger.FromGinContext(c).WithFields(map[string]interface{}{
		"server_id":  serverID,
		"status":     result.Status,
		"latency_ms": result.LatencyMs,
	}).Infof("MCP connection test finished")

	response.Success(c, http.StatusOK, ConnectionTestResponse{
		Success:   result.Success(),
		Status:    result.Status,
		Message:   result.Message,
		LatencyMs: result.LatencyMs,
	})
}
