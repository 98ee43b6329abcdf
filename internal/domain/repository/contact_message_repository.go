package repository

import (
	"context"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// ContactMessageRepository stores contact-form messages.
type ContactMessageRepository interface {
	FindAll(ctx context.Context) ([]*models.ContactMessage, error)
	FindByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	FindByUserID(ctx context.Context, userID uint) ([]*models.ContactMessage, error)

	Save(ctx context.Context, msg *models.ContactMessage) error
	Update(ctx context.Context, msg *models.ContactMessage) error
	Delete(ctx context.Context, id uint) error
}
