// Package dto defines the request and response shapes of the HTTP API and
// the helpers that translate application errors into responses.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/pkg/errors"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SendError writes err as a JSON error response. Structured application
// errors carry their own status and client-safe message; anything else is
// masked as a 500.
func SendError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		c.JSON(appErr.Status, ErrorResponse{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// SendMessage writes a plain confirmation response.
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
