package repository

import (
	"context"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// SurrenderRepository stores dog-surrender requests.
type SurrenderRepository interface {
	FindAll(ctx context.Context) ([]*models.SurrenderRequest, error)
	FindByID(ctx context.Context, id uint) (*models.SurrenderRequest, error)
	FindByUserID(ctx context.Context, userID uint) ([]*models.SurrenderRequest, error)
	FindByStatus(ctx context.Context, status models.SurrenderStatus) ([]*models.SurrenderRequest, error)
	FindUrgent(ctx context.Context) ([]*models.SurrenderRequest, error)

	Save(ctx context.Context, req *models.SurrenderRequest) error
	Update(ctx context.Context, req *models.SurrenderRequest) error
	Delete(ctx context.Context, id uint) error
}
