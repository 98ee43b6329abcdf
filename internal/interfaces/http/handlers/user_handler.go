package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/application/service"
	"github.com/home4paws/home4paws/internal/interfaces/http/middleware"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// UserHandler serves the caller's own profile operations.
type UserHandler struct {
	users *service.UserService
	log   logger.Logger
}

// NewUserHandler wires the user handler.
func NewUserHandler(users *service.UserService, log logger.Logger) *UserHandler {
	return &UserHandler{users: users, log: log.WithComponent("user_handler")}
}

// requireUsername extracts the authenticated username, rejecting anonymous
// requests. The policy layer guards these routes already; this is the
// in-handler backstop.
func requireUsername(c *gin.Context) (string, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return "", false
	}
	return principal.Username, true
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	user, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), username, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ChangePassword handles PUT /api/users/me/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), username, &req); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Password changed successfully")
}

// DeleteMe handles DELETE /api/users/me.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	if err := h.users.DeleteOwnAccount(c.Request.Context(), username); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Account deleted successfully")
}
