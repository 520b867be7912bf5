package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found or is not
// owned by the caller. Both cases share one error so existence never leaks.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrProjectNotFound   = &NotFoundError{Entity: "project"}
	ErrAppNotFound       = &NotFoundError{Entity: "app"}
	ErrMCPServerNotFound = &NotFoundError{Entity: "MCP server"}
	ErrSecretNotFound    = &NotFoundError{Entity: "secret"}
)

// Business Logic Errors
var (
	ErrInvalidProjectStatus = &ValidationError{Field: "status", Message: "must be one of draft, active, archived"}
	ErrInvalidTransport     = &ValidationError{Field: "transport", Message: "must be one of http, sse, stdio"}
	ErrInvalidAuthType      = &ValidationError{Field: "authType", Message: "must be one of none, bearer, api-key"}
	ErrUnsupportedFileType  = &ValidationError{Field: "file", Message: "unsupported file type"}
	ErrEmptyFile            = &ValidationError{Field: "file", Message: "file is empty"}
	ErrFileTooLarge         = &ValidationError{Field: "file", Message: "file exceeds the maximum allowed size"}
	ErrInvalidEncoding      = &ValidationError{Field: "file", Message: "file is not valid UTF-8 text"}
)

// Authentication Errors
var (
	ErrMissingUser  = &AuthenticationError{Message: "authenticated user not found in context"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
