package testutils

import (
	"workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.NewString()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     "user-" + id[:8] + "@test.com",
		Name:      "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// AppFactory provides methods to create test App data
type AppFactory struct{}

// NewAppFactory creates a new AppFactory
func NewAppFactory() *AppFactory {
	return &AppFactory{}
}

// Create creates a test App owned by userID
func (f *AppFactory) Create(userID string) *models.App {
	return &models.App{
		UserID:      userID,
		Name:        "Test App",
		Description: "An app for testing purposes",
	}
}

// WithName creates a test App with a custom name
func (f *AppFactory) WithName(userID, name string) *models.App {
	app := f.Create(userID)
	app.Name = name
	return app
}

// SecretFactory provides methods to create test Secret data
type SecretFactory struct{}

// NewSecretFactory creates a new SecretFactory
func NewSecretFactory() *SecretFactory {
	return &SecretFactory{}
}

// Create creates a test Secret owned by userID
func (f *SecretFactory) Create(userID string) *models.Secret {
	return &models.Secret{
		UserID: userID,
		Name:   "test-token",
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a draft test Project owned by userID
func (f *ProjectFactory) Create(userID string) *models.Project {
	return &models.Project{
		UserID:      userID,
		Name:        "Test Project",
		Description: "A test project for testing purposes",
		Status:      models.ProjectStatusDraft,
	}
}

// WithName creates a test Project with a custom name
func (f *ProjectFactory) WithName(userID, name string) *models.Project {
	project := f.Create(userID)
	project.Name = name
	return project
}

// WithStatus creates a test Project with a custom status
func (f *ProjectFactory) WithStatus(userID string, status models.ProjectStatus) *models.Project {
	project := f.Create(userID)
	project.Status = status
	return project
}

// MCPServerFactory provides methods to create test MCPServer data
type MCPServerFactory struct{}

// NewMCPServerFactory creates a new MCPServerFactory
func NewMCPServerFactory() *MCPServerFactory {
	return &MCPServerFactory{}
}

// Create creates an enabled http test MCPServer owned by userID
func (f *MCPServerFactory) Create(userID string) *models.MCPServer {
	return &models.MCPServer{
		UserID:    userID,
		Name:      "Test MCP Server",
		URL:       "https://mcp.test.com",
		Transport: models.MCPTransportHTTP,
		AuthType:  models.MCPAuthTypeNone,
		Enabled:   true,
		Status:    models.MCPStatusUnknown,
	}
}

// WithName creates a test MCPServer with a custom name
func (f *MCPServerFactory) WithName(userID, name string) *models.MCPServer {
	server := f.Create(userID)
	server.Name = name
	return server
}

// WithEnabled creates a test MCPServer with the given enabled flag
func (f *MCPServerFactory) WithEnabled(userID string, enabled bool) *models.MCPServer {
	server := f.Create(userID)
	server.Enabled = enabled
	return server
}

// WithSecret creates a bearer-authenticated test MCPServer referencing secretID
func (f *MCPServerFactory) WithSecret(userID, secretID string) *models.MCPServer {
	server := f.Create(userID)
	server.AuthType = models.MCPAuthTypeBearer
	server.AuthSecretID = &secretID
	return server
}

// FactorySet provides access to all factories
type FactorySet struct {
	User      *UserFactory
	App       *AppFactory
	Secret    *SecretFactory
	Project   *ProjectFactory
	MCPServer *MCPServerFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		App:       NewAppFactory(),
		Secret:    NewSecretFactory(),
		Project:   NewProjectFactory(),
		MCPServer: NewMCPServerFactory(),
	}
}
