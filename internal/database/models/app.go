package models

// App is a user-owned application. Apps are managed by the app builder; this
// service only reads them to link them into projects.
type App struct {
	BaseModel
	UserID      string `json:"userId" gorm:"size:64;not null;index"`
	Name        string `json:"name" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"type:text"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for App
func (App) TableName() string {
	return "apps"
}
