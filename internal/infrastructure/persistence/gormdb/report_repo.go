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

type reportRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewReportRepository builds the GORM-backed report repository.
func NewReportRepository(db *gorm.DB, log logger.Logger) repository.ReportRepository {
	return &reportRepository{db: db, log: log.WithComponent("report_repo")}
}

func (r *reportRepository) FindAll(ctx context.Context) ([]*models.Report, error) {
	var reports []*models.Report
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&reports).Error; err != nil {
		r.log.Error(ctx, "list reports failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return reports, nil
}

func (r *reportRepository) FindByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("report", id)
		}
		r.log.Error(ctx, "find report failed", err, logger.Fields{"report_id": id})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &report, nil
}

func (r *reportRepository) FindByUserID(ctx context.Context, userID uint) ([]*models.Report, error) {
	var reports []*models.Report
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("submitted_at DESC").Find(&reports).Error
	if err != nil {
		r.log.Error(ctx, "list reports by user failed", err, logger.Fields{"user_id": userID})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return reports, nil
}

func (r *reportRepository) Save(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		r.log.Error(ctx, "create report failed", err)
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *reportRepository) Update(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		r.log.Error(ctx, "update report failed", err, logger.Fields{"report_id": report.ID})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Report{}, id)
	if result.Error != nil {
		r.log.Error(ctx, "delete report failed", result.Error, logger.Fields{"report_id": id})
		return errors.ErrDatabaseOperation.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrResourceNotFound("report", id)
	}
	return nil
}
