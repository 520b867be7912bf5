package auth

import (
	"net/http"
	"strings"

	"workspace-backend/internal/api/response"
	"workspace-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header
func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization header is required"
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", "Invalid authorization header format"
	}
	return tokenString, ""
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			response.AbortWithError(c, http.StatusUnauthorized, problem)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Debugf("rejected bearer token")
			response.AbortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Set user context
		c.Set(logger.UserIDKey, claims.CallerID())
		c.Set(logger.EmailKey, claims.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// GetUserID is a helper function to extract the caller id from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(logger.UserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(logger.EmailKey)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
