package handlers

import (
	"errors"
	"net/http"

	"workspace-backend/internal/api/response"
	"workspace-backend/internal/auth"
	apperrors "workspace-backend/internal/errors"
	"workspace-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// requireUser returns the authenticated caller or writes a 401
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperrors.ErrMissingUser.Error())
		return "", false
	}
	return userID, true
}

// respondServiceError maps a service error onto the response envelope.
// Unexpected errors are logged and reported without detail.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, err.Error())
	case apperrors.IsValidation(err):
		response.Error(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		response.Error(c, http.StatusNotFound, err.Error())
	case apperrors.IsAuthentication(err):
		response.Error(c, http.StatusUnauthorized, err.Error())
	default:
		logger.FromGinContext(c).WithError(err).Errorf("request failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
}
