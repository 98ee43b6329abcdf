package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/internal/infrastructure/storage"
	"github.com/home4paws/home4paws/pkg/constants"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// ReportService manages lost/found dog reports with photo attachments.
type ReportService struct {
	reports repository.ReportRepository
	users   repository.UserRepository
	photos  storage.PhotoStore
	log     logger.Logger
}

// NewReportService wires the report service.
func NewReportService(reports repository.ReportRepository, users repository.UserRepository, photos storage.PhotoStore, log logger.Logger) *ReportService {
	return &ReportService{reports: reports, users: users, photos: photos, log: log.WithComponent("report_service")}
}

// Submit stores a report with its photos. Username may be empty for guest
// submissions; when present the report is stamped with the user's id.
func (s *ReportService) Submit(ctx context.Context, username string, req *dto.ReportRequest, files []*multipart.FileHeader) (*models.Report, error) {
	var userID *uint
	if username != "" {
		user, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		userID = &user.ID
	}

	urls, err := s.photos.SavePhotos(ctx, constants.UploadCategoryReports, files)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Name:        req.Name,
		Phone:       req.Phone,
		Description: req.Description,
		Location:    req.Location,
		Photos:      urls,
		UserID:      userID,
		Status:      models.ReportStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.reports.Save(ctx, report); err != nil {
		for _, url := range urls {
			s.photos.Remove(ctx, url)
		}
		return nil, err
	}

	s.log.Info(ctx, "report submitted", logger.Fields{"report_id": report.ID, "photos": len(urls)})
	return report, nil
}

// ListMine returns the caller's reports.
func (s *ReportService) ListMine(ctx context.Context, username string) ([]*models.Report, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.reports.FindByUserID(ctx, user.ID)
}

// ListAll returns every report. Publicly visible.
func (s *ReportService) ListAll(ctx context.Context) ([]*models.Report, error) {
	return s.reports.FindAll(ctx)
}

// Get loads one report.
func (s *ReportService) Get(ctx context.Context, id uint) (*models.Report, error) {
	return s.reports.FindByID(ctx, id)
}

// owns reports whether the principal may modify the report. Admins may
// modify anything; others only their own rows.
func (s *ReportService) owns(ctx context.Context, principal models.Principal, report *models.Report) (bool, error) {
	if principal.IsAdmin() {
		return true, nil
	}
	if report.UserID == nil {
		return false, nil
	}
	user, err := s.users.FindByUsername(ctx, principal.Username)
	if err != nil {
		return false, err
	}
	return *report.UserID == user.ID, nil
}

// Update replaces the report's text fields and appends any new photos.
// Callers may only update their own reports unless they are admins.
func (s *ReportService) Update(ctx context.Context, principal models.Principal, id uint, req *dto.ReportRequest, files []*multipart.FileHeader) (*models.Report, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.owns(ctx, principal, report)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrResourceNotFound("report", id)
	}

	if len(files) > 0 {
		urls, err := s.photos.SavePhotos(ctx, constants.UploadCategoryReports, files)
		if err != nil {
			return nil, err
		}
		report.Photos = append(report.Photos, urls...)
	}
	report.Name = req.Name
	report.Phone = req.Phone
	report.Description = req.Description
	report.Location = req.Location

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// DeleteOwned removes a report on behalf of its owner (or an admin),
// including its stored photos.
func (s *ReportService) DeleteOwned(ctx context.Context, principal models.Principal, id uint) error {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return err
	}
	ok, err := s.owns(ctx, principal, report)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrResourceNotFound("report", id)
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}
	for _, url := range report.Photos {
		s.photos.Remove(ctx, url)
	}
	return nil
}

// UpdateStatus applies the admin review decision.
func (s *ReportService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Report, error) {
	parsed, ok := models.ParseReportStatus(status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid report status: %s", status))
	}
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	report.Status = parsed
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete removes a report and its stored photos. Admin only.
func (s *ReportService) Delete(ctx context.Context, id uint) error {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}
	for _, url := range report.Photos {
		s.photos.Remove(ctx, url)
	}
	return nil
}
