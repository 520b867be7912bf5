package models

// Secret is a stored credential. Only its identity and owner matter here;
// MCP servers reference it for bearer/api-key auth.
type Secret struct {
	BaseModel
	UserID string `json:"userId" gorm:"size:64;not null;index"`
	Name   string `json:"name" gorm:"not null;size:200"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Secret
func (Secret) TableName() string {
	return "secrets"
}
