package service

import (
	"context"
	"fmt"
	"time"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// ApplicationService manages adoption and purchase applications.
type ApplicationService struct {
	apps  repository.ApplicationRepository
	dogs  repository.DogRepository
	users repository.UserRepository
	log   logger.Logger
}

// NewApplicationService wires the application service.
func NewApplicationService(apps repository.ApplicationRepository, dogs repository.DogRepository, users repository.UserRepository, log logger.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, dogs: dogs, users: users, log: log.WithComponent("application_service")}
}

// Submit files an application for the named caller. The dog must exist and
// still be available, and the application type must match the listing: stray
// dogs are adopted, non-stray dogs are purchased.
func (s *ApplicationService) Submit(ctx context.Context, username string, req *dto.ApplicationRequest) (*models.Application, error) {
	appType, ok := models.ParseApplicationType(req.Type)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid application type: %s", req.Type))
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	dog, err := s.dogs.FindByID(ctx, req.DogID)
	if err != nil {
		return nil, err
	}
	if dog.Status != models.DogStatusAvailable {
		return nil, errors.ErrValidation("Dog is not available")
	}
	if dog.IsStray && appType != models.ApplicationTypeAdoption {
		return nil, errors.ErrValidation("Stray dogs can only be adopted")
	}
	if !dog.IsStray && appType != models.ApplicationTypePurchase {
		return nil, errors.ErrValidation("This dog is offered for sale")
	}

	app := &models.Application{
		UserID:      user.ID,
		DogID:       dog.ID,
		Type:        appType,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Message:     req.Message,
		Status:      models.ApplicationStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "application submitted", logger.Fields{
		"application_id": app.ID,
		"dog_id":         dog.ID,
		"type":           string(appType),
	})
	return app, nil
}

// ListMine returns the caller's applications.
func (s *ApplicationService) ListMine(ctx context.Context, username string) ([]*models.Application, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.apps.FindByUserID(ctx, user.ID)
}

// Get loads one application. Non-admin callers may only see their own.
func (s *ApplicationService) Get(ctx context.Context, principal models.Principal, id uint) (*models.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		user, err := s.users.FindByUsername(ctx, principal.Username)
		if err != nil {
			return nil, err
		}
		if app.UserID != user.ID {
			return nil, errors.ErrResourceNotFound("application", id)
		}
	}
	return app, nil
}

// ListAll returns every application, optionally filtered by status. Admin
// only.
func (s *ApplicationService) ListAll(ctx context.Context, status string) ([]*models.Application, error) {
	if status == "" {
		return s.apps.FindAll(ctx)
	}
	parsed, ok := models.ParseApplicationStatus(status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid application status: %s", status))
	}
	return s.apps.FindByStatus(ctx, parsed)
}

// Review applies the admin decision. Approval also moves the dog off the
// market: adopted for adoption applications, sold for purchases.
func (s *ApplicationService) Review(ctx context.Context, id uint, req *dto.ApplicationStatusUpdateRequest) (*models.Application, error) {
	status, ok := models.ParseApplicationStatus(req.Status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid application status: %s", req.Status))
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = status
	app.AdminNotes = req.AdminNotes
	app.ProcessedAt = &now
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}

	if status == models.ApplicationStatusApproved {
		dog, err := s.dogs.FindByID(ctx, app.DogID)
		if err != nil {
			return nil, err
		}
		if app.Type == models.ApplicationTypeAdoption {
			dog.Status = models.DogStatusAdopted
		} else {
			dog.Status = models.DogStatusSold
		}
		if err := s.dogs.Update(ctx, dog); err != nil {
			return nil, err
		}
	}

	s.log.Info(ctx, "application reviewed", logger.Fields{"application_id": id, "status": string(status)})
	return app, nil
}

// Delete removes an application. Admin only.
func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	return s.apps.Delete(ctx, id)
}
