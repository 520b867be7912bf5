package repository

import (
	"context"
	"time"

	"workspace-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	ListByUserWithAppCount(ctx context.Context, userID string) ([]models.ProjectWithAppCount, error)
	GetOwnedWithAppCount(ctx context.Context, id, userID string) (*models.ProjectWithAppCount, error)
	GetOwned(ctx context.Context, id, userID string) (*models.Project, error)
	UpdateOwned(ctx context.Context, id, userID string, updates map[string]interface{}) error
	DeleteOwned(ctx context.Context, id, userID string) error
	AddApp(ctx context.Context, userID, projectID, appID string) error
	RemoveApp(ctx context.Context, projectID, appID string) error
	ListApps(ctx context.Context, projectID string) ([]models.App, error)
}

// AppRepositoryInterface defines the interface for app repository operations
type AppRepositoryInterface interface {
	Create(ctx context.Context, app *models.App) error
	GetOwned(ctx context.Context, id, userID string) (*models.App, error)
	ListByUser(ctx context.Context, userID string) ([]models.App, error)
}

// SecretRepositoryInterface defines the interface for secret repository operations
type SecretRepositoryInterface interface {
	Create(ctx context.Context, secret *models.Secret) error
	GetOwned(ctx context.Context, id, userID string) (*models.Secret, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// MCPServerRepositoryInterface defines the interface for MCP server repository operations
type MCPServerRepositoryInterface interface {
	Create(ctx context.Context, server *models.MCPServer) error
	ListByUser(ctx context.Context, userID string) ([]models.MCPServer, error)
	ListEnabledByUser(ctx context.Context, userID string) ([]models.MCPServer, error)
	GetOwned(ctx context.Context, id, userID string) (*models.MCPServer, error)
	UpdateOwned(ctx context.Context, id, userID string, updates map[string]interface{}) error
	DeleteOwned(ctx context.Context, id, userID string) error
	ToggleOwned(ctx context.Context, id, userID string) error
	UpdateStatus(ctx context.Context, id, userID string, status models.MCPConnectionStatus, lastError *string, checkedAt time.Time) error
}

// Compile-time checks
var (
	_ ProjectRepositoryInterface   = (*ProjectRepository)(nil)
	_ AppRepositoryInterface       = (*AppRepository)(nil)
	_ SecretRepositoryInterface    = (*SecretRepository)(nil)
	_ UserRepositoryInterface      = (*UserRepository)(nil)
	_ MCPServerRepositoryInterface = (*MCPServerRepository)(nil)
)
