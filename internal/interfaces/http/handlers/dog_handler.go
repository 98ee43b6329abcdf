package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/application/service"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// DogHandler serves the public dog catalog and the admin listing CRUD.
type DogHandler struct {
	dogs *service.DogService
	log  logger.Logger
}

// NewDogHandler wires the dog handler.
func NewDogHandler(dogs *service.DogService, log logger.Logger) *DogHandler {
	return &DogHandler{dogs: dogs, log: log.WithComponent("dog_handler")}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		dto.SendError(c, errors.ErrValidation("Invalid id: "+raw))
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/dogs.
func (h *DogHandler) List(c *gin.Context) {
	dogs, err := h.dogs.ListAll(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dogs)
}

// Get handles GET /api/dogs/:id.
func (h *DogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dog, err := h.dogs.Get(c.Request.Context(), id)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dog)
}

// ListAdoptable handles GET /api/dogs/adopt: stray dogs offered for
// adoption.
func (h *DogHandler) ListAdoptable(c *gin.Context) {
	dogs, err := h.dogs.ListStray(c.Request.Context(), true)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dogs)
}

// ListForSale handles GET /api/dogs/buy: non-stray dogs offered for sale.
func (h *DogHandler) ListForSale(c *gin.Context) {
	dogs, err := h.dogs.ListStray(c.Request.Context(), false)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dogs)
}

// ListByStatus handles GET /api/dogs/status/:status.
func (h *DogHandler) ListByStatus(c *gin.Context) {
	dogs, err := h.dogs.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dogs)
}

// Create handles POST /api/admin/dogs.
func (h *DogHandler) Create(c *gin.Context) {
	var req dto.DogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	dog, err := h.dogs.Create(c.Request.Context(), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dog)
}

// Update handles PUT /api/admin/dogs/:id.
func (h *DogHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	dog, err := h.dogs.Update(c.Request.Context(), id, &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dog)
}

// UpdateStatus handles PATCH /api/admin/dogs/:id/status.
func (h *DogHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DogStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	dog, err := h.dogs.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dog)
}

// Delete handles DELETE /api/admin/dogs/:id.
func (h *DogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.dogs.Delete(c.Request.Context(), id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Dog deleted successfully")
}
