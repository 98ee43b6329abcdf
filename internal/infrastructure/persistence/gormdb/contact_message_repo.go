package gormdb

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

type contactMessageRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewContactMessageRepository builds the GORM-backed contact-message repository.
func NewContactMessageRepository(db *gorm.DB, log logger.Logger) repository.ContactMessageRepository {
	return &contactMessageRepository{db: db, log: log.WithComponent("contact_message_repo")}
}

func (r *contactMessageRepository) FindAll(ctx context.Context) ([]*models.ContactMessage, error) {
	var msgs []*models.ContactMessage
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&msgs).Error; err != nil {
		r.log.Error(ctx, "list contact messages failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return msgs, nil
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("contact message", id)
		}
		r.log.Error(ctx, "find contact message failed", err, logger.Fields{"message_id": id})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &msg, nil
}

func (r *contactMessageRepository) FindByUserID(ctx context.Context, userID uint) ([]*models.ContactMessage, error) {
	var msgs []*models.ContactMessage
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("submitted_at DESC").Find(&msgs).Error
	if err != nil {
		r.log.Error(ctx, "list contact messages by user failed", err, logger.Fields{"user_id": userID})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return msgs, nil
}

func (r *contactMessageRepository) Save(ctx context.Context, msg *models.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		r.log.Error(ctx, "create contact message failed", err)
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *contactMessageRepository) Update(ctx context.Context, msg *models.ContactMessage) error {
	if err := r.db.WithContext(ctx).Save(msg).Error; err != nil {
		r.log.Error(ctx, "update contact message failed", err, logger.Fields{"message_id": msg.ID})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		r.log.Error(ctx, "delete contact message failed", result.Error, logger.Fields{"message_id": id})
		return errors.ErrDatabaseOperation.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrResourceNotFound("contact message", id)
	}
	return nil
}
