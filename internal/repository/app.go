package repository

import (
	"context"

	"workspace-backend/internal/database/models"

	"gorm.io/gorm"
)

// AppRepository handles read access to apps
type AppRepository struct {
	db *gorm.DB
}

// NewAppRepository creates a new app repository
func NewAppRepository(db *gorm.DB) *AppRepository {
	return &AppRepository{db: db}
}

// Create creates a new app
func (r *AppRepository) Create(ctx context.Context, app *models.App) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// GetOwned retrieves an app by ID if it belongs to the user
func (r *AppRepository) GetOwned(ctx context.Context, id, userID string) (*models.App, error) {
	return FindOwned[models.App](ctx, r.db, id, userID)
}

// ListByUser retrieves all apps of a user ordered by name
func (r *AppRepository) ListByUser(ctx context.Context, userID string) ([]models.App, error) {
	apps := []models.App{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
