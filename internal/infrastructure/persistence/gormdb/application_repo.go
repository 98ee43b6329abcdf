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

type applicationRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewApplicationRepository builds the GORM-backed application repository.
func NewApplicationRepository(db *gorm.DB, log logger.Logger) repository.ApplicationRepository {
	return &applicationRepository{db: db, log: log.WithComponent("application_repo")}
}

func (r *applicationRepository) FindAll(ctx context.Context) ([]*models.Application, error) {
	var apps []*models.Application
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&apps).Error; err != nil {
		r.log.Error(ctx, "list applications failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return apps, nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("application", id)
		}
		r.log.Error(ctx, "find application failed", err, logger.Fields{"application_id": id})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &app, nil
}

func (r *applicationRepository) FindByUserID(ctx context.Context, userID uint) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("submitted_at DESC").Find(&apps).Error
	if err != nil {
		r.log.Error(ctx, "list applications by user failed", err, logger.Fields{"user_id": userID})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return apps, nil
}

func (r *applicationRepository) FindByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("submitted_at DESC").Find(&apps).Error
	if err != nil {
		r.log.Error(ctx, "list applications by status failed", err, logger.Fields{"status": string(status)})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return apps, nil
}

func (r *applicationRepository) Save(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		r.log.Error(ctx, "create application failed", err)
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *applicationRepository) Update(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		r.log.Error(ctx, "update application failed", err, logger.Fields{"application_id": app.ID})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Application{}, id)
	if result.Error != nil {
		r.log.Error(ctx, "delete application failed", result.Error, logger.Fields{"application_id": id})
		return errors.ErrDatabaseOperation.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrResourceNotFound("application", id)
	}
	return nil
}
