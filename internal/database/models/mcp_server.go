package models

import "time"

// MCPServer is a user-owned remote tool provider endpoint together with its
// last known reachability.
type MCPServer struct {
	BaseModel
	UserID       string              `json:"userId" gorm:"size:64;not null;index"`
	Name         string              `json:"name" gorm:"not null;size:200"`
	URL          string              `json:"url" gorm:"not null;size:2000"`
	Transport    MCPTransport        `json:"transport" gorm:"type:varchar(10);not null;default:'http'"`
	AuthType     MCPAuthType         `json:"authType" gorm:"type:varchar(10);not null;default:'none'"`
	AuthSecretID *string             `json:"authSecretId" gorm:"size:64;index"`
	Enabled      bool                `json:"enabled" gorm:"not null;default:true"`
	Status       MCPConnectionStatus `json:"status" gorm:"type:varchar(20);not null;default:'unknown'"`
	LastChecked  *time.Time          `json:"lastChecked"`
	LastError    *string             `json:"lastError" gorm:"type:text"`
	Description  string              `json:"description" gorm:"type:text"`

	// Relationships
	User       *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AuthSecret *Secret `json:"-" gorm:"foreignKey:AuthSecretID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for MCPServer
func (MCPServer) TableName() string {
	return "mcp_servers"
}
