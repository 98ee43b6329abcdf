package repository

import (
	"context"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// ApplicationRepository stores adoption/purchase applications.
type ApplicationRepository interface {
	FindAll(ctx context.Context) ([]*models.Application, error)
	FindByID(ctx context.Context, id uint) (*models.Application, error)
	FindByUserID(ctx context.Context, userID uint) ([]*models.Application, error)
	FindByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.Application, error)

	Save(ctx context.Context, app *models.Application) error
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id uint) error
}
