package repository

import (
	"context"
	"errors"

	"workspace-backend/internal/database/models"
	apperrors "workspace-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and their app links
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// withAppCount selects projects together with the number of linked apps
func (r *ProjectRepository) withAppCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Select("projects.*, COUNT(project_apps.id) AS app_count").
		Joins("LEFT JOIN project_apps ON project_apps.project_id = projects.id").
		Group("projects.id")
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// ListByUserWithAppCount retrieves all projects of a user, most recently updated first
func (r *ProjectRepository) ListByUserWithAppCount(ctx context.Context, userID string) ([]models.ProjectWithAppCount, error) {
	projects := []models.ProjectWithAppCount{}
	err := r.withAppCount(ctx).
		Where("projects.user_id = ?", userID).
		Order("projects.updated_at DESC").
		Scan(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetOwnedWithAppCount retrieves a single project of a user with its app count
func (r *ProjectRepository) GetOwnedWithAppCount(ctx context.Context, id, userID string) (*models.ProjectWithAppCount, error) {
	var projects []models.ProjectWithAppCount
	err := r.withAppCount(ctx).
		Where("projects.id = ? AND projects.user_id = ?", id, userID).
		Scan(&projects).Error
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &projects[0], nil
}

// GetOwned retrieves a project by ID if it belongs to the user
func (r *ProjectRepository) GetOwned(ctx context.Context, id, userID string) (*models.Project, error) {
	return FindOwned[models.Project](ctx, r.db, id, userID)
}

// UpdateOwned applies a partial update to a project of the user
func (r *ProjectRepository) UpdateOwned(ctx context.Context, id, userID string, updates map[string]interface{}) error {
	return updateOwned(ctx, r.db, &models.Project{}, id, userID, updates)
}

// DeleteOwned deletes a project of the user; its app links are removed by the FK cascade
func (r *ProjectRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.db, &models.Project{}, id, userID)
}

// AddApp links an app to a project when both belong to the user.
// Linking an already linked app is a no-op.
func (r *ProjectRepository) AddApp(ctx context.Context, userID, projectID, appID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindOwned[models.Project](ctx, tx, projectID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}
		if _, err := FindOwned[models.App](ctx, tx, appID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAppNotFound
			}
			return err
		}

		link := &models.ProjectApp{ProjectID: projectID, AppID: appID}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "app_id"}},
			DoNothing: true,
		}).Create(link).Error
	})
}

// RemoveApp deletes the link between a project and an app if it exists
func (r *ProjectRepository) RemoveApp(ctx context.Context, projectID, appID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND app_id = ?", projectID, appID).
		Delete(&models.ProjectApp{}).Error
}

// ListApps retrieves the apps linked to a project in the order they were added
func (r *ProjectRepository) ListApps(ctx context.Context, projectID string) ([]models.App, error) {
	apps := []models.App{}
	err := r.db.WithContext(ctx).
		Model(&models.App{}).
		Select("apps.*").
		Joins("JOIN project_apps ON project_apps.app_id = apps.id").
		Where("project_apps.project_id = ?", projectID).
		Order("project_apps.added_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
