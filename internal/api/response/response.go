package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response
type Envelope struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Message string `json:"message" example:"project not found"`
	Status  int    `json:"status" example:"404"`
}

// Success writes a successful envelope carrying data
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// Error writes a failed envelope with the given status and message
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   &ErrorBody{Message: message, Status: status},
	})
}

// AbortWithError writes a failed envelope and stops the handler chain
func AbortWithError(c *gin.Context, status int, message string) {
	Error(c, status, message)
	c.Abort()
}
