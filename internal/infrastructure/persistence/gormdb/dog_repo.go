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

type dogRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewDogRepository builds the GORM-backed dog repository.
func NewDogRepository(db *gorm.DB, log logger.Logger) repository.DogRepository {
	return &dogRepository{db: db, log: log.WithComponent("dog_repo")}
}

func (r *dogRepository) FindAll(ctx context.Context) ([]*models.Dog, error) {
	var dogs []*models.Dog
	if err := r.db.WithContext(ctx).Order("id").Find(&dogs).Error; err != nil {
		r.log.Error(ctx, "list dogs failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return dogs, nil
}

func (r *dogRepository) FindByID(ctx context.Context, id uint) (*models.Dog, error) {
	var dog models.Dog
	if err := r.db.WithContext(ctx).First(&dog, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("dog", id)
		}
		r.log.Error(ctx, "find dog failed", err, logger.Fields{"dog_id": id})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &dog, nil
}

func (r *dogRepository) FindByStatus(ctx context.Context, status models.DogStatus) ([]*models.Dog, error) {
	var dogs []*models.Dog
	err := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("id").Find(&dogs).Error
	if err != nil {
		r.log.Error(ctx, "list dogs by status failed", err, logger.Fields{"status": string(status)})
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return dogs, nil
}

func (r *dogRepository) FindByStray(ctx context.Context, isStray bool) ([]*models.Dog, error) {
	var dogs []*models.Dog
	err := r.db.WithContext(ctx).Where("is_stray = ?", isStray).Order("id").Find(&dogs).Error
	if err != nil {
		r.log.Error(ctx, "list dogs by stray flag failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return dogs, nil
}

func (r *dogRepository) Save(ctx context.Context, dog *models.Dog) error {
	if err := r.db.WithContext(ctx).Create(dog).Error; err != nil {
		r.log.Error(ctx, "create dog failed", err)
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *dogRepository) Update(ctx context.Context, dog *models.Dog) error {
	if err := r.db.WithContext(ctx).Save(dog).Error; err != nil {
		r.log.Error(ctx, "update dog failed", err, logger.Fields{"dog_id": dog.ID})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *dogRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Dog{}, id)
	if result.Error != nil {
		r.log.Error(ctx, "delete dog failed", result.Error, logger.Fields{"dog_id": id})
		return errors.ErrDatabaseOperation.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrResourceNotFound("dog", id)
	}
	return nil
}
