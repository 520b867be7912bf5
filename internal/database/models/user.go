package models

// User is the owner of every workspace resource. Users are provisioned by the
// identity provider; the JWT subject is the user ID.
type User struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name  string `json:"name" gorm:"size:200"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
