package repository

import (
	"context"
	"time"

	"workspace-backend/internal/database/models"

	"gorm.io/gorm"
)

// MCPServerRepository handles database operations for MCP server configurations
type MCPServerRepository struct {
	db *gorm.DB
}

// NewMCPServerRepository creates a new MCP server repository
func NewMCPServerRepository(db *gorm.DB) *MCPServerRepository {
	return &MCPServerRepository{db: db}
}

// Create creates a new MCP server
func (r *MCPServerRepository) Create(ctx context.Context, server *models.MCPServer) error {
	enabled := server.Enabled
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(server).Error; err != nil {
			return err
		}
		// the column default replaces a zero-value false on insert
		if !enabled {
			server.Enabled = false
			return tx.Model(server).UpdateColumn("enabled", false).Error
		}
		return nil
	})
}

// ListByUser retrieves all servers of a user, newest first
func (r *MCPServerRepository) ListByUser(ctx context.Context, userID string) ([]models.MCPServer, error) {
	servers := []models.MCPServer{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&servers).Error
	if err != nil {
		return nil, err
	}
	return servers, nil
}

// ListEnabledByUser retrieves the enabled servers of a user, newest first
func (r *MCPServerRepository) ListEnabledByUser(ctx context.Context, userID string) ([]models.MCPServer, error) {
	servers := []models.MCPServer{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND enabled = ?", userID, true).
		Order("created_at DESC").
		Find(&servers).Error
	if err != nil {
		return nil, err
	}
	return servers, nil
}

// GetOwned retrieves a server by ID if it belongs to the user
func (r *MCPServerRepository) GetOwned(ctx context.Context, id, userID string) (*models.MCPServer, error) {
	return FindOwned[models.MCPServer](ctx, r.db, id, userID)
}

// UpdateOwned applies a partial update to a server of the user
func (r *MCPServerRepository) UpdateOwned(ctx context.Context, id, userID string, updates map[string]interface{}) error {
	return updateOwned(ctx, r.db, &models.MCPServer{}, id, userID, updates)
}

// DeleteOwned deletes a server of the user
func (r *MCPServerRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.db, &models.MCPServer{}, id, userID)
}

// ToggleOwned flips the enabled flag of a server in a single statement
func (r *MCPServerRepository) ToggleOwned(ctx context.Context, id, userID string) error {
	return updateOwned(ctx, r.db, &models.MCPServer{}, id, userID, map[string]interface{}{
		"enabled": gorm.Expr("NOT enabled"),
	})
}

// UpdateStatus records the outcome of a connection test
func (r *MCPServerRepository) UpdateStatus(ctx context.Context, id, userID string, status models.MCPConnectionStatus, lastError *string, checkedAt time.Time) error {
	return updateOwned(ctx, r.db, &models.MCPServer{}, id, userID, map[string]interface{}{
		"status":       status,
		"last_checked": checkedAt,
		"last_error":   lastError,
	})
}
