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

type surrenderRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewSurrenderRepository builds the GORM-backed surrender-request repository.
func NewSurrenderRepository(db *gorm.DB, log logger.Logger) repository.SurrenderRepository {
	return &surrenderRepository{db: db, log: log.WithComponent("surrender_repo")}
}

func (r *surrenderRepository) FindAll(ctx context.Context) ([]*models.SurrenderRequest, error) {
	var reqs []*models.SurrenderRequest
	if err := r.db.WithContext(ctx).Order("submission_date DESC").Find(&reqs).Error; err != nil {
		r.log.Error(ctx, "list surrender requests failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return reqs, nil
}

func (r *surrenderRepository) FindByID(ctx context.Context, id uint) (*models.SurrenderRequest, error) {
	var req models.SurrenderRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("surrender request", id)
		}
		r.log.Error(ctx, "find surrender request failed", err, logger.Fields{"surrender_id": id})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &req, nil
}

func (r *surrenderRepository) FindByUserID(ctx context.Context, userID uint) ([]*models.SurrenderRequest, error) {
	var reqs []*models.SurrenderRequest
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("submission_date DESC").Find(&reqs).Error
	if err != nil {
		r.log.Error(ctx, "list surrender requests by user failed", err, logger.Fields{"user_id": userID})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return reqs, nil
}

func (r *surrenderRepository) FindByStatus(ctx context.Context, status models.SurrenderStatus) ([]*models.SurrenderRequest, error) {
	var reqs []*models.SurrenderRequest
	err := r.db.WithContext(ctx).Where("request_status = ?", string(status)).Order("submission_date DESC").Find(&reqs).Error
	if err != nil {
		r.log.Error(ctx, "list surrender requests by status failed", err, logger.Fields{"status": string(status)})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return reqs, nil
}

func (r *surrenderRepository) FindUrgent(ctx context.Context) ([]*models.SurrenderRequest, error) {
	var reqs []*models.SurrenderRequest
	err := r.db.WithContext(ctx).
		Where("is_urgent = ? AND request_status = ?", true, string(models.SurrenderStatusPending)).
		Order("submission_date").
		Find(&reqs).Error
	if err != nil {
		r.log.Error(ctx, "list urgent surrender requests failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return reqs, nil
}

func (r *surrenderRepository) Save(ctx context.Context, req *models.SurrenderRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		r.log.Error(ctx, "create surrender request failed", err)
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *surrenderRepository) Update(ctx context.Context, req *models.SurrenderRequest) error {
	if err := r.db.WithContext(ctx).Save(req).Error; err != nil {
		r.log.Error(ctx, "update surrender request failed", err, logger.Fields{"surrender_id": req.ID})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *surrenderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SurrenderRequest{}, id)
	if result.Error != nil {
		r.log.Error(ctx, "delete surrender request failed", result.Error, logger.Fields{"surrender_id": id})
		return errors.ErrDatabaseOperation.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrResourceNotFound("surrender request", id)
	}
	return nil
}
