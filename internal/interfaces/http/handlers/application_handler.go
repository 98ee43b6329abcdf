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

// ApplicationHandler serves adoption/purchase applications.
type ApplicationHandler struct {
	apps *service.ApplicationService
	log  logger.Logger
}

// NewApplicationHandler wires the application handler.
func NewApplicationHandler(apps *service.ApplicationService, log logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, log: log.WithComponent("application_handler")}
}

// Submit handles POST /api/applications.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	app, err := h.apps.Submit(c.Request.Context(), username, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /api/applications/my-applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	apps, err := h.apps.ListMine(c.Request.Context(), username)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Get handles GET /api/applications/:id. Owners see their own; admins see
// all.
func (h *ApplicationHandler) Get(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	app, err := h.apps.Get(c.Request.Context(), principal, id)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListAll handles GET /api/admin/applications with optional ?status=.
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.apps.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Review handles PUT /api/admin/applications/:id/status.
func (h *ApplicationHandler) Review(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ApplicationStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	app, err := h.apps.Review(c.Request.Context(), id, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /api/admin/applications/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.apps.Delete(c.Request.Context(), id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Application deleted successfully")
}
