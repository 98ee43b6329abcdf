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

// SurrenderHandler serves dog-surrender requests.
type SurrenderHandler struct {
	surrenders *service.SurrenderService
	log        logger.Logger
}

// NewSurrenderHandler wires the surrender handler.
func NewSurrenderHandler(surrenders *service.SurrenderService, log logger.Logger) *SurrenderHandler {
	return &SurrenderHandler{surrenders: surrenders, log: log.WithComponent("surrender_handler")}
}

// Submit handles POST /api/surrender-dogs: multipart with a
// "surrenderRequest" JSON part and up to five "photos" file parts.
func (h *SurrenderHandler) Submit(c *gin.Context) {
	var req dto.SurrenderSubmission
	files, err := bindMultipartJSON(c, "surrenderRequest", &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}

	var username string
	if principal, ok := middleware.CurrentPrincipal(c); ok {
		username = principal.Username
	}

	surrender, err := h.surrenders.Submit(c.Request.Context(), username, &req, files)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, surrender)
}

// List handles GET /api/surrender-dogs.
func (h *SurrenderHandler) List(c *gin.Context) {
	surrenders, err := h.surrenders.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrenders)
}

// ListMine handles GET /api/surrender-dogs/my-requests.
func (h *SurrenderHandler) ListMine(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	surrenders, err := h.surrenders.ListMine(c.Request.Context(), username)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrenders)
}

// Get handles GET /api/surrender-dogs/:id.
func (h *SurrenderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	surrender, err := h.surrenders.Get(c.Request.Context(), id)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrender)
}

// Update handles PUT /api/surrender-dogs/:id (owner or admin).
func (h *SurrenderHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SurrenderSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	surrender, err := h.surrenders.Update(c.Request.Context(), principal, id, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrender)
}

// Delete handles DELETE /api/surrender-dogs/:id (owner or admin).
func (h *SurrenderHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.surrenders.DeleteOwned(c.Request.Context(), principal, id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Surrender request deleted successfully")
}

// AdminList handles GET /api/admin/surrender-submissions with optional
// ?status=.
func (h *SurrenderHandler) AdminList(c *gin.Context) {
	surrenders, err := h.surrenders.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrenders)
}

// AdminListUrgent handles GET /api/admin/surrender-submissions/urgent.
func (h *SurrenderHandler) AdminListUrgent(c *gin.Context) {
	surrenders, err := h.surrenders.ListUrgent(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrenders)
}

// AdminReview handles PUT /api/admin/surrender-submissions/:id/status.
func (h *SurrenderHandler) AdminReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SurrenderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	surrender, err := h.surrenders.Review(c.Request.Context(), id, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, surrender)
}

// AdminDelete handles DELETE /api/admin/surrender-submissions/:id.
func (h *SurrenderHandler) AdminDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.surrenders.Delete(c.Request.Context(), id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Surrender request deleted successfully")
}
