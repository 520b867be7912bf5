package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"workspace-backend/internal/auth"
	"workspace-backend/internal/config"
	"workspace-backend/internal/database"
	"workspace-backend/internal/database/models"
	apperrors "workspace-backend/internal/errors"
	"workspace-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type UserData struct {
	Email      string          `yaml:"email"`
	Name       string          `yaml:"name"`
	Apps       []AppData       `yaml:"apps,omitempty"`
	Secrets    []string        `yaml:"secrets,omitempty"`
	Projects   []ProjectData   `yaml:"projects,omitempty"`
	MCPServers []MCPServerData `yaml:"mcp_servers,omitempty"`
}

type AppData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ProjectData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status,omitempty"`
	Apps        []string `yaml:"apps,omitempty"`
}

type MCPServerData struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Transport   string `yaml:"transport,omitempty"`
	AuthType    string `yaml:"auth_type,omitempty"`
	AuthSecret  string `yaml:"auth_secret,omitempty"`
	Description string `yaml:"description,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty"`
}

// UsersFile is the layout of every *.yaml file under the data directory
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type repositories struct {
	users      *repository.UserRepository
	apps       *repository.AppRepository
	secrets    *repository.SecretRepository
	projects   *repository.ProjectRepository
	mcpServers *repository.MCPServerRepository
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}
	logrus.Info("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), repository.NewUserRepository(db))
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}

	users, err := loadUsers("scripts/data")
	if err != nil {
		logrus.Fatalf("Failed to read seed files: %v", err)
	}

	repos := &repositories{
		users:      repository.NewUserRepository(db),
		apps:       repository.NewAppRepository(db),
		secrets:    repository.NewSecretRepository(db),
		projects:   repository.NewProjectRepository(db),
		mcpServers: repository.NewMCPServerRepository(db),
	}

	ctx := context.Background()
	created := 0
	for _, userData := range users {
		user, isNew, err := seedUser(ctx, repos, userData)
		if err != nil {
			logrus.Fatalf("Failed to seed user %s: %v", userData.Email, err)
		}
		if isNew {
			created++
		}

		apps, err := repos.apps.ListByUser(ctx, user.ID)
		if err != nil {
			logrus.Fatalf("Failed to list apps of %s: %v", user.Email, err)
		}
		appNames := make([]string, 0, len(apps))
		for _, app := range apps {
			appNames = append(appNames, app.Name)
		}
		logrus.WithField("user", user.Email).Infof("Apps: %s", strings.Join(appNames, ", "))

		// Development tokens so the API can be exercised right away
		if cfg.IsDevelopment() {
			token, err := authService.GenerateJWT(user.ID, user.Email)
			if err != nil {
				logrus.Warnf("Failed to issue token for %s: %v", user.Email, err)
				continue
			}
			logrus.WithField("user", user.Email).Infof("Bearer token: %s", token)
		}
	}

	logrus.Infof("Users: %d created, %d total", created, len(users))
	logrus.Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

// seedUser creates the user with everything it owns. Existing users are left untouched.
func seedUser(ctx context.Context, repos *repositories, userData UserData) (*models.User, bool, error) {
	existing, err := repos.users.GetByEmail(ctx, userData.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user := &models.User{Email: userData.Email, Name: userData.Name}
	if err := repos.users.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	appIDs := make(map[string]string, len(userData.Apps))
	for _, appData := range userData.Apps {
		app := &models.App{UserID: user.ID, Name: appData.Name, Description: appData.Description}
		if err := repos.apps.Create(ctx, app); err != nil {
			return nil, false, fmt.Errorf("failed to create app %s: %w", appData.Name, err)
		}
		appIDs[appData.Name] = app.ID
	}

	secretIDs := make(map[string]string, len(userData.Secrets))
	for _, name := range userData.Secrets {
		secret := &models.Secret{UserID: user.ID, Name: name}
		if err := repos.secrets.Create(ctx, secret); err != nil {
			return nil, false, fmt.Errorf("failed to create secret %s: %w", name, err)
		}
		secretIDs[name] = secret.ID
	}

	for _, projectData := range userData.Projects {
		if err := seedProject(ctx, repos, user.ID, projectData, appIDs); err != nil {
			return nil, false, err
		}
	}

	for _, serverData := range userData.MCPServers {
		if err := seedMCPServer(ctx, repos, user.ID, serverData, secretIDs); err != nil {
			return nil, false, err
		}
	}

	logrus.WithField("user", user.Email).Infof("Seeded %d apps, %d projects, %d MCP servers",
		len(userData.Apps), len(userData.Projects), len(userData.MCPServers))
	return user, true, nil
}

func seedProject(ctx context.Context, repos *repositories, userID string, projectData ProjectData, appIDs map[string]string) error {
	status := models.ProjectStatusDraft
	if projectData.Status != "" {
		status = models.ProjectStatus(projectData.Status)
	}

	project := &models.Project{
		UserID:      userID,
		Name:        projectData.Name,
		Description: projectData.Description,
		Status:      status,
	}
	if err := repos.projects.Create(ctx, project); err != nil {
		return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
	}

	for _, appName := range projectData.Apps {
		appID, ok := appIDs[appName]
		if !ok {
			logrus.Warnf("Project %s references unknown app %s, skipping", projectData.Name, appName)
			continue
		}
		if err := repos.projects.AddApp(ctx, userID, project.ID, appID); err != nil {
			return fmt.Errorf("failed to link app %s to project %s: %w", appName, projectData.Name, err)
		}
	}
	return nil
}

func seedMCPServer(ctx context.Context, repos *repositories, userID string, serverData MCPServerData, secretIDs map[string]string) error {
	server := &models.MCPServer{
		UserID:      userID,
		Name:        serverData.Name,
		URL:         serverData.URL,
		Transport:   models.MCPTransportHTTP,
		AuthType:    models.MCPAuthTypeNone,
		Description: serverData.Description,
		Enabled:     true,
		Status:      models.MCPStatusUnknown,
	}
	if serverData.Transport != "" {
		server.Transport = models.MCPTransport(serverData.Transport)
	}
	if serverData.AuthType != "" {
		server.AuthType = models.MCPAuthType(serverData.AuthType)
	}
	if serverData.Enabled != nil {
		server.Enabled = *serverData.Enabled
	}
	if serverData.AuthSecret != "" {
		secretID, ok := secretIDs[serverData.AuthSecret]
		if !ok {
			return fmt.Errorf("MCP server %s: %w", serverData.Name, apperrors.ErrSecretNotFound)
		}
		server.AuthSecretID = &secretID
	}

	if err := repos.mcpServers.Create(ctx, server); err != nil {
		return fmt.Errorf("failed to create MCP server %s: %w", serverData.Name, err)
	}
	return nil
}
