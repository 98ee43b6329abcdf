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

// SurrenderService manages dog-surrender requests with photo attachments.
type SurrenderService struct {
	surrenders repository.SurrenderRepository
	users      repository.UserRepository
	photos     storage.PhotoStore
	log        logger.Logger
}

// NewSurrenderService wires the surrender service.
func NewSurrenderService(surrenders repository.SurrenderRepository, users repository.UserRepository, photos storage.PhotoStore, log logger.Logger) *SurrenderService {
	return &SurrenderService{surrenders: surrenders, users: users, photos: photos, log: log.WithComponent("surrender_service")}
}

// Submit stores a surrender request with its dog photos. Username may be
// empty for guest submissions.
func (s *SurrenderService) Submit(ctx context.Context, username string, req *dto.SurrenderSubmission, files []*multipart.FileHeader) (*models.SurrenderRequest, error) {
	var userID *uint
	if username != "" {
		user, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		userID = &user.ID
	}

	urls, err := s.photos.SavePhotos(ctx, constants.UploadCategorySurrenderDogs, files)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	surrender := &models.SurrenderRequest{
		OwnerName:        req.OwnerName,
		OwnerPhone:       req.OwnerPhone,
		OwnerEmail:       req.OwnerEmail,
		OwnerAddress:     req.OwnerAddress,
		DogName:          req.DogName,
		DogBreed:         req.DogBreed,
		DogAge:           req.DogAge,
		DogGender:        req.DogGender,
		DogSize:          req.DogSize,
		DogDescription:   req.DogDescription,
		IsVaccinated:     req.IsVaccinated,
		IsNeutered:       req.IsNeutered,
		HasMedicalIssues: req.HasMedicalIssues,
		MedicalHistory:   req.MedicalHistory,
		SurrenderReason:  req.SurrenderReason,
		IsUrgent:         req.IsUrgent,
		PreferredDate:    req.PreferredDate,
		Status:           models.SurrenderStatusPending,
		UserID:           userID,
		PhotoURLs:        urls,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}
	if err := s.surrenders.Save(ctx, surrender); err != nil {
		for _, url := range urls {
			s.photos.Remove(ctx, url)
		}
		return nil, err
	}

	s.log.Info(ctx, "surrender request submitted", logger.Fields{
		"surrender_id": surrender.ID,
		"urgent":       surrender.IsUrgent,
		"photos":       len(urls),
	})
	return surrender, nil
}

// ListMine returns the caller's surrender requests.
func (s *SurrenderService) ListMine(ctx context.Context, username string) ([]*models.SurrenderRequest, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.surrenders.FindByUserID(ctx, user.ID)
}

// ListAll returns every request, optionally filtered by status. Admin only.
func (s *SurrenderService) ListAll(ctx context.Context, status string) ([]*models.SurrenderRequest, error) {
	if status == "" {
		return s.surrenders.FindAll(ctx)
	}
	parsed, ok := models.ParseSurrenderStatus(status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid surrender status: %s", status))
	}
	return s.surrenders.FindByStatus(ctx, parsed)
}

// ListUrgent returns urgent requests still awaiting review. Admin only.
func (s *SurrenderService) ListUrgent(ctx context.Context) ([]*models.SurrenderRequest, error) {
	return s.surrenders.FindUrgent(ctx)
}

// Get loads one request.
func (s *SurrenderService) Get(ctx context.Context, id uint) (*models.SurrenderRequest, error) {
	return s.surrenders.FindByID(ctx, id)
}

func (s *SurrenderService) owns(ctx context.Context, principal models.Principal, surrender *models.SurrenderRequest) (bool, error) {
	if principal.IsAdmin() {
		return true, nil
	}
	if surrender.UserID == nil {
		return false, nil
	}
	user, err := s.users.FindByUsername(ctx, principal.Username)
	if err != nil {
		return false, err
	}
	return *surrender.UserID == user.ID, nil
}

// Update replaces the submission fields of a pending request. Callers may
// only update their own requests unless they are admins; decided requests
// are immutable.
func (s *SurrenderService) Update(ctx context.Context, principal models.Principal, id uint, req *dto.SurrenderSubmission) (*models.SurrenderRequest, error) {
	surrender, err := s.surrenders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.owns(ctx, principal, surrender)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrResourceNotFound("surrender request", id)
	}
	if surrender.Status != models.SurrenderStatusPending && !principal.IsAdmin() {
		return nil, errors.ErrValidation("Only pending requests can be updated")
	}

	surrender.OwnerName = req.OwnerName
	surrender.OwnerPhone = req.OwnerPhone
	surrender.OwnerEmail = req.OwnerEmail
	surrender.OwnerAddress = req.OwnerAddress
	surrender.DogName = req.DogName
	surrender.DogBreed = req.DogBreed
	surrender.DogAge = req.DogAge
	surrender.DogGender = req.DogGender
	surrender.DogSize = req.DogSize
	surrender.DogDescription = req.DogDescription
	surrender.IsVaccinated = req.IsVaccinated
	surrender.IsNeutered = req.IsNeutered
	surrender.HasMedicalIssues = req.HasMedicalIssues
	surrender.MedicalHistory = req.MedicalHistory
	surrender.SurrenderReason = req.SurrenderReason
	surrender.IsUrgent = req.IsUrgent
	surrender.PreferredDate = req.PreferredDate
	surrender.UpdatedAt = time.Now()

	if err := s.surrenders.Update(ctx, surrender); err != nil {
		return nil, err
	}
	return surrender, nil
}

// DeleteOwned removes a request on behalf of its owner (or an admin),
// including its stored photos.
func (s *SurrenderService) DeleteOwned(ctx context.Context, principal models.Principal, id uint) error {
	surrender, err := s.surrenders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	ok, err := s.owns(ctx, principal, surrender)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrResourceNotFound("surrender request", id)
	}
	if err := s.surrenders.Delete(ctx, id); err != nil {
		return err
	}
	for _, url := range surrender.PhotoURLs {
		s.photos.Remove(ctx, url)
	}
	return nil
}

// Review applies the admin decision.
func (s *SurrenderService) Review(ctx context.Context, id uint, req *dto.SurrenderStatusUpdateRequest) (*models.SurrenderRequest, error) {
	status, ok := models.ParseSurrenderStatus(req.Status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid surrender status: %s", req.Status))
	}

	surrender, err := s.surrenders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	surrender.Status = status
	surrender.AdminNotes = req.AdminNotes
	surrender.UpdatedAt = time.Now()
	if err := s.surrenders.Update(ctx, surrender); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "surrender request reviewed", logger.Fields{"surrender_id": id, "status": string(status)})
	return surrender, nil
}

// Delete removes a request and its stored photos. Admin only.
func (s *SurrenderService) Delete(ctx context.Context, id uint) error {
	surrender, err := s.surrenders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.surrenders.Delete(ctx, id); err != nil {
		return err
	}
	for _, url := range surrender.PhotoURLs {
		s.photos.Remove(ctx, url)
	}
	return nil
}
