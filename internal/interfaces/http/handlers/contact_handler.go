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

// ContactHandler serves contact-form messages.
type ContactHandler struct {
	contacts *service.ContactService
	log      logger.Logger
}

// NewContactHandler wires the contact handler.
func NewContactHandler(contacts *service.ContactService, log logger.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log.WithComponent("contact_handler")}
}

// Submit handles POST /api/contact-messages. Open to guests.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}

	var username string
	if principal, ok := middleware.CurrentPrincipal(c); ok {
		username = principal.Username
	}

	msg, err := h.contacts.Submit(c.Request.Context(), username, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMine handles GET /api/contact-messages/my-messages.
func (h *ContactHandler) ListMine(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	msgs, err := h.contacts.ListMine(c.Request.Context(), username)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Get handles GET /api/contact-messages/:id (owner or admin).
func (h *ContactHandler) Get(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.contacts.Get(c.Request.Context(), principal, id)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Update handles PUT /api/contact-messages/:id (owner, pending only).
func (h *ContactHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	msg, err := h.contacts.Update(c.Request.Context(), principal, id, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Delete handles DELETE /api/contact-messages/:id (owner or admin).
func (h *ContactHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.contacts.DeleteOwned(c.Request.Context(), principal, id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Message deleted successfully")
}

// AdminList handles GET /api/admin/contact-messages.
func (h *ContactHandler) AdminList(c *gin.Context) {
	msgs, err := h.contacts.ListAll(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// AdminRespond handles PUT /api/admin/contact-messages/:id/respond.
func (h *ContactHandler) AdminRespond(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ContactResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	msg, err := h.contacts.Respond(c.Request.Context(), id, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// AdminUpdateStatus handles PUT /api/admin/contact-messages/:id/status.
func (h *ContactHandler) AdminUpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ContactStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	msg, err := h.contacts.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// AdminDelete handles DELETE /api/admin/contact-messages/:id.
func (h *ContactHandler) AdminDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.contacts.Delete(c.Request.Context(), id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Message deleted successfully")
}
