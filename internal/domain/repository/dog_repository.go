package repository

import (
	"context"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// DogRepository stores dog listings.
type DogRepository interface {
	FindAll(ctx context.Context) ([]*models.Dog, error)
	FindByID(ctx context.Context, id uint) (*models.Dog, error)
	FindByStatus(ctx context.Context, status models.DogStatus) ([]*models.Dog, error)
	FindByStray(ctx context.Context, isStray bool) ([]*models.Dog, error)

	Save(ctx context.Context, dog *models.Dog) error
	Update(ctx context.Context, dog *models.Dog) error
	Delete(ctx context.Context, id uint) error
}
