package repository

import (
	"context"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// ReportRepository stores lost/found reports.
type ReportRepository interface {
	FindAll(ctx context.Context) ([]*models.Report, error)
	FindByID(ctx context.Context, id uint) (*models.Report, error)
	FindByUserID(ctx context.Context, userID uint) ([]*models.Report, error)

	Save(ctx context.Context, report *models.Report) error
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id uint) error
}
