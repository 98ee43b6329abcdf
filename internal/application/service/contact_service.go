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

// ContactService manages contact-form messages.
type ContactService struct {
	messages repository.ContactMessageRepository
	users    repository.UserRepository
	log      logger.Logger
}

// NewContactService wires the contact service.
func NewContactService(messages repository.ContactMessageRepository, users repository.UserRepository, log logger.Logger) *ContactService {
	return &ContactService{messages: messages, users: users, log: log.WithComponent("contact_service")}
}

// Submit stores a contact message. Username may be empty for guests.
func (s *ContactService) Submit(ctx context.Context, username string, req *dto.ContactMessageRequest) (*models.ContactMessage, error) {
	var userID *uint
	if username != "" {
		user, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		userID = &user.ID
	}

	msg := &models.ContactMessage{
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		Status:      models.ContactMessageStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "contact message submitted", logger.Fields{"message_id": msg.ID})
	return msg, nil
}

// ListMine returns the caller's messages.
func (s *ContactService) ListMine(ctx context.Context, username string) ([]*models.ContactMessage, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.messages.FindByUserID(ctx, user.ID)
}

// ListAll returns every message. Admin only.
func (s *ContactService) ListAll(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.messages.FindAll(ctx)
}

// Get loads one message. Non-admin callers may only see their own; guest
// messages have no owner and are admin-visible only.
func (s *ContactService) Get(ctx context.Context, principal models.Principal, id uint) (*models.ContactMessage, error) {
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		user, err := s.users.FindByUsername(ctx, principal.Username)
		if err != nil {
			return nil, err
		}
		if msg.UserID == nil || *msg.UserID != user.ID {
			return nil, errors.ErrResourceNotFound("contact message", id)
		}
	}
	return msg, nil
}

// Update replaces the caller's own pending message text.
func (s *ContactService) Update(ctx context.Context, principal models.Principal, id uint, req *dto.ContactMessageRequest) (*models.ContactMessage, error) {
	msg, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if msg.Status != models.ContactMessageStatusPending && !principal.IsAdmin() {
		return nil, errors.ErrValidation("Only pending messages can be updated")
	}

	msg.Name = req.Name
	msg.Email = req.Email
	msg.Message = req.Message
	if err := s.messages.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// DeleteOwned removes a message the caller owns (or any message for an
// admin).
func (s *ContactService) DeleteOwned(ctx context.Context, principal models.Principal, id uint) error {
	if _, err := s.Get(ctx, principal, id); err != nil {
		return err
	}
	return s.messages.Delete(ctx, id)
}

// Respond records the admin reply and moves the message to a terminal or
// in-progress state.
func (s *ContactService) Respond(ctx context.Context, id uint, req *dto.ContactResponseRequest) (*models.ContactMessage, error) {
	status := models.ContactMessageStatusResponded
	if req.Status != "" {
		parsed, ok := models.ParseContactMessageStatus(req.Status)
		if !ok {
			return nil, errors.ErrValidation(fmt.Sprintf("Invalid contact message status: %s", req.Status))
		}
		status = parsed
	}

	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	msg.AdminResponse = req.Response
	msg.Status = status
	msg.RespondedAt = &now
	if err := s.messages.Update(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "contact message responded", logger.Fields{"message_id": id, "status": string(status)})
	return msg, nil
}

// UpdateStatus changes the workflow state without recording a reply. Admin
// only.
func (s *ContactService) UpdateStatus(ctx context.Context, id uint, status string) (*models.ContactMessage, error) {
	parsed, ok := models.ParseContactMessageStatus(status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid contact message status: %s", status))
	}
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	msg.Status = parsed
	if err := s.messages.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete removes a message. Admin only.
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return s.messages.Delete(ctx, id)
}
