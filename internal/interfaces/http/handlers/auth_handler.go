// Package handlers implements the HTTP handlers of the Home4Paws API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/application/service"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth    *service.AuthService
	metrics *monitoring.Metrics
	log     logger.Logger
}

// NewAuthHandler wires the auth handler.
func NewAuthHandler(auth *service.AuthService, metrics *monitoring.Metrics, log logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, metrics: metrics, log: log.WithComponent("auth_handler")}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.metrics.RecordLogin("login", "failure")
		dto.SendError(c, err)
		return
	}
	h.metrics.RecordLogin("login", "success")
	c.JSON(http.StatusOK, resp)
}

// AdminLogin handles POST /api/admin/login. A valid non-admin credential is
// rejected with the access-denied message.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}

	resp, err := h.auth.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		h.metrics.RecordLogin("admin_login", "failure")
		dto.SendError(c, err)
		return
	}
	h.metrics.RecordLogin("admin_login", "success")
	c.JSON(http.StatusOK, resp)
}
