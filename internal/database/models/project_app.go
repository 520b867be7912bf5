package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectApp represents the many-to-many relationship between projects and apps.
// A given app is linked to a project at most once.
type ProjectApp struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	ProjectID string    `json:"projectId" gorm:"size:64;not null;uniqueIndex:idx_project_apps_project_app"`
	AppID     string    `json:"appId" gorm:"size:64;not null;uniqueIndex:idx_project_apps_project_app;index"`
	AddedAt   time.Time `json:"addedAt" gorm:"autoCreateTime"`

	// Relationships
	Project *Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	App     *App     `json:"-" gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectApp
func (ProjectApp) TableName() string {
	return "project_apps"
}

// BeforeCreate sets the ID if not already set
func (pa *ProjectApp) BeforeCreate(tx *gorm.DB) error {
	if pa.ID == "" {
		pa.ID = uuid.NewString()
	}
	return nil
}
