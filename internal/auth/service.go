package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workspace-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// UserRepository defines the user lookup needed by the auth service
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// AuthService issues and validates bearer tokens
type AuthService struct {
	config   *AuthConfig
	userRepo UserRepository
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"3f1c7a0e-8d2b-4b8e-9a51-0c6f2b7d9e10"`
	Email                string `json:"email,omitempty" example:"jane.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// CallerID returns the caller id carried by the token
func (c *AuthClaims) CallerID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.RegisteredClaims.Subject
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid     bool         `json:"valid" example:"true"`
	UserID    string       `json:"userId" example:"3f1c7a0e-8d2b-4b8e-9a51-0c6f2b7d9e10"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
	User      *models.User `json:"user,omitempty"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		userRepo: userRepo,
	}, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(userID, email string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.CallerID() == "" {
			return nil, errors.New("token has no subject")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Describe validates a token and resolves the user it was issued for.
// The user is omitted when it is not provisioned locally.
func (s *AuthService) Describe(ctx context.Context, tokenString string) (*AuthValidateResponse, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}

	resp := &AuthValidateResponse{
		Valid:  true,
		UserID: claims.CallerID(),
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		resp.ExpiresAt = &exp
	}
	if s.userRepo != nil {
		if user, err := s.userRepo.GetByID(ctx, resp.UserID); err == nil {
			resp.User = user
		}
	}
	return resp, nil
}
