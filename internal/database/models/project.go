package models

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusDraft    ProjectStatus = "draft"
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project is a user-owned named grouping of apps
type Project struct {
	BaseModel
	UserID      string        `json:"userId" gorm:"size:64;not null;index"`
	Name        string        `json:"name" gorm:"not null;size:200"`
	Description string        `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`

	// Relationships
	User        *User        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProjectApps []ProjectApp `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectWithAppCount is a project row annotated with the number of linked apps
type ProjectWithAppCount struct {
	Project
	AppCount int64 `json:"appCount"`
}
