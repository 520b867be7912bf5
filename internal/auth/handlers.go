package auth

import (
	"net/http"

	"workspace-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes token endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ValidateToken validates a bearer token and returns the caller it identifies
// @Summary Validate JWT token
// @Description Validate a bearer token and return the user it was issued for
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} response.Envelope{data=AuthValidateResponse} "Token is valid"
// @Failure 401 {object} response.Envelope "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, problem := bearerToken(c)
	if problem != "" {
		response.Error(c, http.StatusUnauthorized, problem)
		return
	}

	result, err := h.service.Describe(c.Request.Context(), tokenString)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	response.Success(c, http.StatusOK, result)
}
