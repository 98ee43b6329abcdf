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

type userRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewUserRepository builds the GORM-backed user repository.
func NewUserRepository(db *gorm.DB, log logger.Logger) repository.UserRepository {
	return &userRepository{db: db, log: log.WithComponent("user_repo")}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("user", username)
		}
		r.log.Error(ctx, "find user by username failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Roles").First(&user, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrResourceNotFound("user", id)
		}
		r.log.Error(ctx, "find user by id failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Preload("Roles").Order("id").Find(&users).Error; err != nil {
		r.log.Error(ctx, "list users failed", err)
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return users, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, errors.ErrDatabaseOperation.WithError(err)
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, errors.ErrDatabaseOperation.WithError(err)
	}
	return count > 0, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.log.Error(ctx, "create user failed", err, logger.Fields{"username": user.Username})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.log.Error(ctx, "update user failed", err, logger.Fields{"user_id": user.ID})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		r.log.Error(ctx, "delete user failed", result.Error, logger.Fields{"user_id": id})
		return errors.ErrDatabaseOperation.WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrResourceNotFound("user", id)
	}
	return nil
}

func (r *userRepository) EnsureRole(ctx context.Context, name models.Role) (*models.RoleRecord, error) {
	var role models.RoleRecord
	err := r.db.WithContext(ctx).Where("name = ?", string(name)).FirstOrCreate(&role, models.RoleRecord{Name: string(name)}).Error
	if err != nil {
		return nil, errors.ErrDatabaseOperation.WithError(err)
	}
	return &role, nil
}

func (r *userRepository) AssignRole(ctx context.Context, userID uint, name models.Role) error {
	role, err := r.EnsureRole(ctx, name)
	if err != nil {
		return err
	}
	user := models.User{ID: userID}
	if err := r.db.WithContext(ctx).Model(&user).Association("Roles").Append(role); err != nil {
		r.log.Error(ctx, "assign role failed", err, logger.Fields{"user_id": userID, "role": string(name)})
		return errors.ErrDatabaseOperation.WithError(err)
	}
	return nil
}
