package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/application/service"
	"github.com/home4paws/home4paws/internal/interfaces/http/middleware"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

const maxUploadBytes = 32 << 20

// bindMultipartJSON extracts a JSON document from the named form field of a
// multipart request and binds it into out, returning the attached photo
// files.
func bindMultipartJSON(c *gin.Context, field string, out interface{}) ([]*multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errors.ErrValidation("Invalid multipart request")
	}
	raw := c.Request.FormValue(field)
	if raw == "" {
		return nil, errors.ErrValidation("Missing " + field + " part")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil, errors.ErrValidation("Invalid " + field + " payload")
	}
	if err := binding.Validator.ValidateStruct(out); err != nil {
		return nil, errors.ErrValidation(err.Error())
	}
	return c.Request.MultipartForm.File["photos"], nil
}

// ReportHandler serves lost/found dog reports.
type ReportHandler struct {
	reports *service.ReportService
	log     logger.Logger
}

// NewReportHandler wires the report handler.
func NewReportHandler(reports *service.ReportService, log logger.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log.WithComponent("report_handler")}
}

// Submit handles POST /api/reports: multipart with a "report" JSON part and
// up to five "photos" file parts. Guests may submit; signed-in users get
// the report stamped with their account.
func (h *ReportHandler) Submit(c *gin.Context) {
	var req dto.ReportRequest
	files, err := bindMultipartJSON(c, "report", &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}

	var username string
	if principal, ok := middleware.CurrentPrincipal(c); ok {
		username = principal.Username
	}

	report, err := h.reports.Submit(c.Request.Context(), username, &req, files)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// List handles GET /api/reports.
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reports.ListAll(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ListMine handles GET /api/reports/my-reports.
func (h *ReportHandler) ListMine(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	reports, err := h.reports.ListMine(c.Request.Context(), username)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// Get handles GET /api/reports/:id.
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Update handles PUT /api/reports/:id (multipart, owner or admin).
func (h *ReportHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReportRequest
	files, err := bindMultipartJSON(c, "report", &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	report, err := h.reports.Update(c.Request.Context(), principal, id, &req, files)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Delete handles DELETE /api/reports/:id (owner or admin).
func (h *ReportHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		dto.SendError(c, errors.ErrUnauthorized)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.DeleteOwned(c.Request.Context(), principal, id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Report deleted successfully")
}

// AdminDelete handles DELETE /api/admin/reports/:id.
func (h *ReportHandler) AdminDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendMessage(c, http.StatusOK, "Report deleted successfully")
}

// AdminUpdateStatus handles PUT /api/admin/reports/:id/status.
func (h *ReportHandler) AdminUpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReportStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation(err.Error()))
		return
	}
	report, err := h.reports.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
