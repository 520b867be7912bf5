package models

// MCPTransport is the wire transport an MCP server speaks
type MCPTransport string

const (
	MCPTransportHTTP  MCPTransport = "http"
	MCPTransportSSE   MCPTransport = "sse"
	MCPTransportStdio MCPTransport = "stdio"
)

// MCPAuthType is how requests to an MCP server are authenticated
type MCPAuthType string

const (
	MCPAuthTypeNone   MCPAuthType = "none"
	MCPAuthTypeBearer MCPAuthType = "bearer"
	MCPAuthTypeAPIKey MCPAuthType = "api-key"
)

// MCPConnectionStatus is the outcome of the latest connection test
type MCPConnectionStatus string

const (
	MCPStatusConnected    MCPConnectionStatus = "connected"
	MCPStatusDisconnected MCPConnectionStatus = "disconnected"
	MCPStatusError        MCPConnectionStatus = "error"
	MCPStatusUnknown      MCPConnectionStatus = "unknown"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusActive, ProjectStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the MCPTransport is valid
func (t MCPTransport) IsValid() bool {
	switch t {
	case MCPTransportHTTP, MCPTransportSSE, MCPTransportStdio:
		return true
	}
	return false
}

// IsValid checks if the MCPAuthType is valid
func (a MCPAuthType) IsValid() bool {
	switch a {
	case MCPAuthTypeNone, MCPAuthTypeBearer, MCPAuthTypeAPIKey:
		return true
	}
	return false
}

// IsValid checks if the MCPConnectionStatus is valid
func (s MCPConnectionStatus) IsValid() bool {
	switch s {
	case MCPStatusConnected, MCPStatusDisconnected, MCPStatusError, MCPStatusUnknown:
		return true
	}
	return false
}
