package service

import (
	"context"
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

// ProjectService handles business logic for projects and their app links
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// UpdateProjectRequest represents a partial project update; nil fields are left unchanged
type UpdateProjectRequest struct {
	Name        *string               `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string               `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *models.ProjectStatus `json:"status,omitempty" swaggertype:"string" enums:"draft,active,archived"`
}

// CreateProject creates a new draft project owned by the user
func (s *ProjectService) CreateProject(ctx context.Context, userID string, req *CreateProjectRequest) (*models.ProjectWithAppCount, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	project := &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectStatusDraft,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &models.ProjectWithAppCount{Project: *project}, nil
}

// GetUserProjects retrieves all projects of the user with their app counts
func (s *ProjectService) GetUserProjects(ctx context.Context, userID string) ([]models.ProjectWithAppCount, error) {
	projects, err := s.repo.ListByUserWithAppCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject retrieves a single project of the user with its app count
func (s *ProjectService) GetProject(ctx context.Context, userID, projectID string) (*models.ProjectWithAppCount, error) {
	project, err := s.repo.GetOwnedWithAppCount(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// UpdateProject applies the supplied fields to a project of the user
func (s *ProjectService) UpdateProject(ctx context.Context, userID, projectID string, req *UpdateProjectRequest) (*models.ProjectWithAppCount, error) {
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidProjectStatus
		}
		updates["status"] = *req.Status
	}

	if err := s.repo.UpdateOwned(ctx, projectID, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.GetProject(ctx, userID, projectID)
}

// DeleteProject deletes a project of the user together with its app links
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	if err := s.repo.DeleteOwned(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// AddAppToProject links an app to a project; both must belong to the user
func (s *ProjectService) AddAppToProject(ctx context.Context, userID, projectID, appID string) error {
	if err := s.repo.AddApp(ctx, userID, projectID, appID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to add app to project: %w", err)
	}
	return nil
}

// RemoveAppFromProject unlinks an app from a project of the user
func (s *ProjectService) RemoveAppFromProject(ctx context.Context, userID, projectID, appID string) error {
	if err := s.ensureOwned(ctx, userID, projectID); err != nil {
		return err
	}
	if err := s.repo.RemoveApp(ctx, projectID, appID); err != nil {
		return fmt.Errorf("failed to remove app from project: %w", err)
	}
	return nil
}

// GetProjectApps retrieves the apps linked to a project of the user
func (s *ProjectService) GetProjectApps(ctx context.Context, userID, projectID string) ([]models.App, error) {
	if err := s.ensureOwned(ctx, userID, projectID); err != nil {
		return nil, err
	}
	apps, err := s.repo.ListApps(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project apps: %w", err)
	}
	return apps, nil
}

func (s *ProjectService) ensureOwned(ctx context.Context, userID, projectID string) error {
	if _, err := s.repo.GetOwned(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	return nil
}
