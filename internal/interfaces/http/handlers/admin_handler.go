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

// AdminHandler serves the admin identity endpoints and account management.
// The resource-specific admin endpoints (dogs, reports, applications,
// surrender submissions, contact messages) live on their own handlers.
type AdminHandler struct {
	users *service.UserService
	log   logger.Logger
}

// NewAdminHandler wires the admin handler.
func NewAdminHandler(users *service.UserService, log logger.Logger) *AdminHandler {
	return &AdminHandler{users: users, log: log.WithComponent("admin_handler")}
}

// Profile handles GET /api/admin/profile and GET /api/admin/me.
func (h *AdminHandler) Profile(c *gin.Context) {
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

// Check handles GET /api/admin/check: a cheap probe the frontend uses to
// confirm the session still carries admin rights. Reaching this handler
// means the policy already admitted an admin.
func (h *AdminHandler) Check(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": principal.IsAdmin(), "username": principal.Username})
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// SetUserEnabled handles PUT /api/admin/users/:id/enabled.
func (h *AdminHandler) SetUserEnabled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	user, err := h.users.SetEnabled(c.Request.Context(), id, *req.Enabled)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "User deleted successfully")
}
