package repository

import (
	"context"

	"workspace-backend/internal/database/models"

	"gorm.io/gorm"
)

// SecretRepository handles read access to secrets referenced by MCP servers
type SecretRepository struct {
	db *gorm.DB
}

// NewSecretRepository creates a new secret repository
func NewSecretRepository(db *gorm.DB) *SecretRepository {
	return &SecretRepository{db: db}
}

// Create creates a new secret
func (r *SecretRepository) Create(ctx context.Context, secret *models.Secret) error {
	return r.db.WithContext(ctx).Create(secret).Error
}

// GetOwned retrieves a secret by ID if it belongs to the user
func (r *SecretRepository) GetOwned(ctx context.Context, id, userID string) (*models.Secret, error) {
	return FindOwned[models.Secret](ctx, r.db, id, userID)
}
