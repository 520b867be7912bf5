package service

import (
	"context"
	"io"

	"workspace-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, userID string, req *CreateProjectRequest) (*models.ProjectWithAppCount, error)
	GetUserProjects(ctx context.Context, userID string) ([]models.ProjectWithAppCount, error)
	GetProject(ctx context.Context, userID, projectID string) (*models.ProjectWithAppCount, error)
	UpdateProject(ctx context.Context, userID, projectID string, req *UpdateProjectRequest) (*models.ProjectWithAppCount, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
	AddAppToProject(ctx context.Context, userID, projectID, appID string) error
	RemoveAppFromProject(ctx context.Context, userID, projectID, appID string) error
	GetProjectApps(ctx context.Context, userID, projectID string) ([]models.App, error)
}

// MCPServerServiceInterface defines the interface for MCP server service
type MCPServerServiceInterface interface {
	CreateServer(ctx context.Context, userID string, req *CreateMCPServerRequest) (*models.MCPServer, error)
	GetUserServers(ctx context.Context, userID string) ([]models.MCPServer, error)
	GetEnabledServers(ctx context.Context, userID string) ([]models.MCPServer, error)
	GetServer(ctx context.Context, userID, serverID string) (*models.MCPServer, error)
	UpdateServer(ctx context.Context, userID, serverID string, req *UpdateMCPServerRequest) (*models.MCPServer, error)
	DeleteServer(ctx context.Context, userID, serverID string) error
	ToggleServer(ctx context.Context, userID, serverID string) (*models.MCPServer, error)
	UpdateServerStatus(ctx context.Context, userID, serverID string, status models.MCPConnectionStatus, errMsg *string) (*models.MCPServer, error)
}

// MCPHealthCheckerInterface defines the interface for MCP server connection tests
type MCPHealthCheckerInterface interface {
	Check(ctx context.Context, rawURL string) ProbeResult
}

// AttachmentServiceInterface defines the interface for attachment text extraction
type AttachmentServiceInterface interface {
	MaxBytes() int64
	Extract(ctx context.Context, filename string, r io.Reader) (*ExtractedDocument, error)
}

// Compile-time checks
var (
	_ ProjectServiceInterface    = (*ProjectService)(nil)
	_ MCPServerServiceInterface  = (*MCPServerService)(nil)
	_ MCPHealthCheckerInterface  = (*MCPHealthChecker)(nil)
	_ AttachmentServiceInterface = (*AttachmentService)(nil)
)
