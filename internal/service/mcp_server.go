package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"workspace-backend/internal/database/models"
	apperrors "workspace-backend/internal/errors"
	"workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MCPServerService handles business logic for MCP server configurations
type MCPServerService struct {
	repo       repository.MCPServerRepositoryInterface
	secretRepo repository.SecretRepositoryInterface
	validator  *validator.Validate
}

// NewMCPServerService creates a new MCP server service
func NewMCPServerService(repo repository.MCPServerRepositoryInterface, secretRepo repository.SecretRepositoryInterface, validator *validator.Validate) *MCPServerService {
	return &MCPServerService{
		repo:       repo,
		secretRepo: secretRepo,
		validator:  validator,
	}
}

// NullableString tells an absent JSON key apart from an explicit null
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the key was present
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// CreateMCPServerRequest represents the request to register an MCP server
type CreateMCPServerRequest struct {
	Name         string              `json:"name" validate:"required,max=200"`
	URL          string              `json:"url" validate:"required,max=2000"`
	Transport    models.MCPTransport `json:"transport,omitempty" swaggertype:"string" enums:"http,sse,stdio"`
	AuthType     models.MCPAuthType  `json:"authType,omitempty" swaggertype:"string" enums:"none,bearer,api-key"`
	AuthSecretID *string             `json:"authSecretId,omitempty"`
	Description  string              `json:"description,omitempty" validate:"max=2000"`
	Enabled      *bool               `json:"enabled,omitempty"`
}

// UpdateMCPServerRequest represents a partial server update; absent fields are left unchanged.
// An explicit null authSecretId clears the secret reference.
type UpdateMCPServerRequest struct {
	Name         *string              `json:"name,omitempty" validate:"omitempty,max=200"`
	URL          *string              `json:"url,omitempty" validate:"omitempty,max=2000"`
	Transport    *models.MCPTransport `json:"transport,omitempty" swaggertype:"string" enums:"http,sse,stdio"`
	AuthType     *models.MCPAuthType  `json:"authType,omitempty" swaggertype:"string" enums:"none,bearer,api-key"`
	AuthSecretID NullableString       `json:"authSecretId" swaggertype:"string"`
	Description  *string              `json:"description,omitempty" validate:"omitempty,max=2000"`
	Enabled      *bool                `json:"enabled,omitempty"`
}

// CreateServer registers a new MCP server for the user
func (s *MCPServerService) CreateServer(ctx context.Context, userID string, req *CreateMCPServerRequest) (*models.MCPServer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.URL = strings.TrimSpace(req.URL)
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	transport := req.Transport
	if transport == "" {
		transport = models.MCPTransportHTTP
	}
	if !transport.IsValid() {
		return nil, apperrors.ErrInvalidTransport
	}
	authType := req.AuthType
	if authType == "" {
		authType = models.MCPAuthTypeNone
	}
	if !authType.IsValid() {
		return nil, apperrors.ErrInvalidAuthType
	}
	if err := s.validateURL(transport, req.URL); err != nil {
		return nil, err
	}

	var authSecretID *string
	if req.AuthSecretID != nil && *req.AuthSecretID != "" {
		if err := s.ensureSecretOwned(ctx, userID, *req.AuthSecretID); err != nil {
			return nil, err
		}
		authSecretID = req.AuthSecretID
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	server := &models.MCPServer{
		UserID:       userID,
		Name:         req.Name,
		URL:          req.URL,
		Transport:    transport,
		AuthType:     authType,
		AuthSecretID: authSecretID,
		Enabled:      enabled,
		Status:       models.MCPStatusUnknown,
		Description:  req.Description,
	}
	if err := s.repo.Create(ctx, server); err != nil {
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server, nil
}

// GetUserServers retrieves all MCP servers of the user, newest first
func (s *MCPServerService) GetUserServers(ctx context.Context, userID string) ([]models.MCPServer, error) {
	servers, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list MCP servers: %w", err)
	}
	return servers, nil
}

// GetEnabledServers retrieves the enabled MCP servers of the user, newest first
func (s *MCPServerService) GetEnabledServers(ctx context.Context, userID string) ([]models.MCPServer, error) {
	servers, err := s.repo.ListEnabledByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled MCP servers: %w", err)
	}
	return servers, nil
}

// GetServer retrieves a single MCP server of the user
func (s *MCPServerService) GetServer(ctx context.Context, userID, serverID string) (*models.MCPServer, error) {
	server, err := s.repo.GetOwned(ctx, serverID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMCPServerNotFound
		}
		return nil, fmt.Errorf("failed to get MCP server: %w", err)
	}
	return server, nil
}

// UpdateServer applies the supplied configuration fields to an MCP server of the user.
// Connection status fields are never touched here.
func (s *MCPServerService) UpdateServer(ctx context.Context, userID, serverID string, req *UpdateMCPServerRequest) (*models.MCPServer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		updates["name"] = name
	}
	if req.URL != nil {
		url := strings.TrimSpace(*req.URL)
		if url == "" {
			return nil, apperrors.NewValidationError("url", "must not be empty")
		}
		updates["url"] = url
	}
	if req.Transport != nil {
		if !req.Transport.IsValid() {
			return nil, apperrors.ErrInvalidTransport
		}
		updates["transport"] = *req.Transport
	}
	if req.AuthType != nil {
		if !req.AuthType.IsValid() {
			return nil, apperrors.ErrInvalidAuthType
		}
		updates["auth_type"] = *req.AuthType
	}
	if req.AuthSecretID.Set {
		if req.AuthSecretID.Value == nil || *req.AuthSecretID.Value == "" {
			updates["auth_secret_id"] = nil
		} else {
			if err := s.ensureSecretOwned(ctx, userID, *req.AuthSecretID.Value); err != nil {
				return nil, err
			}
			updates["auth_secret_id"] = *req.AuthSecretID.Value
		}
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}

	if url, ok := updates["url"].(string); ok || req.Transport != nil {
		current, err := s.GetServer(ctx, userID, serverID)
		if err != nil {
			return nil, err
		}
		transport := current.Transport
		if req.Transport != nil {
			transport = *req.Transport
		}
		if !ok {
			url = current.URL
		}
		if err := s.validateURL(transport, url); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateOwned(ctx, serverID, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMCPServerNotFound
		}
		return nil, fmt.Errorf("failed to update MCP server: %w", err)
	}

	return s.GetServer(ctx, userID, serverID)
}

// DeleteServer deletes an MCP server of the user
func (s *MCPServerService) DeleteServer(ctx context.Context, userID, serverID string) error {
	if err := s.repo.DeleteOwned(ctx, serverID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMCPServerNotFound
		}
		return fmt.Errorf("failed to delete MCP server: %w", err)
	}
	return nil
}

// ToggleServer flips the enabled flag of an MCP server of the user
func (s *MCPServerService) ToggleServer(ctx context.Context, userID, serverID string) (*models.MCPServer, error) {
	if err := s.repo.ToggleOwned(ctx, serverID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMCPServerNotFound
		}
		return nil, fmt.Errorf("failed to toggle MCP server: %w", err)
	}
	return s.GetServer(ctx, userID, serverID)
}

// UpdateServerStatus records the outcome of a connection test
func (s *MCPServerService) UpdateServerStatus(ctx context.Context, userID, serverID string, status models.MCPConnectionStatus, errMsg *string) (*models.MCPServer, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of connected, disconnected, error, unknown")
	}
	if err := s.repo.UpdateStatus(ctx, serverID, userID, status, errMsg, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMCPServerNotFound
		}
		return nil, fmt.Errorf("failed to update MCP server status: %w", err)
	}
	return s.GetServer(ctx, userID, serverID)
}

func (s *MCPServerService) ensureSecretOwned(ctx context.Context, userID, secretID string) error {
	if _, err := s.secretRepo.GetOwned(ctx, secretID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSecretNotFound
		}
		return fmt.Errorf("failed to verify secret: %w", err)
	}
	return nil
}

// validateURL requires an http(s) URL for network transports; stdio servers carry a command instead
func (s *MCPServerService) validateURL(transport models.MCPTransport, url string) error {
	if transport == models.MCPTransportStdio {
		return nil
	}
	if err := s.validator.Var(url, "url,startswith=http"); err != nil {
		return apperrors.NewValidationError("url", "must be a valid http or https URL")
	}
	return nil
}
