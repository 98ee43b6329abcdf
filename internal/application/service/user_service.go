package service

import (
	"context"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// UserService handles profile management and the admin account operations.
type UserService struct {
	users  repository.UserRepository
	hasher crypto.PasswordHasher
	log    logger.Logger
}

// NewUserService wires the user service.
func NewUserService(users repository.UserRepository, hasher crypto.PasswordHasher, log logger.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log.WithComponent("user_service")}
}

// GetByUsername loads an account with its roles.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// UpdateProfile applies the caller's profile changes. A changed email must
// remain unique.
func (s *UserService) UpdateProfile(ctx context.Context, username string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.ErrDuplicate("Email", req.Email)
		}
		user.Email = req.Email
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword rotates the caller's password after verifying the current
// one.
func (s *UserService) ChangePassword(ctx context.Context, username string, req *dto.ChangePasswordRequest) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(req.CurrentPassword, user.PasswordHash) {
		return errors.ErrValidation("Current password is incorrect")
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		s.log.Error(ctx, "hash password failed", err)
		return errors.ErrInternalServer.WithError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info(ctx, "password changed", logger.Fields{"username": username})
	return nil
}

// DeleteOwnAccount removes the caller's account.
func (s *UserService) DeleteOwnAccount(ctx context.Context, username string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user.ID)
}

// ListAll returns every account. Admin only.
func (s *UserService) ListAll(ctx context.Context) ([]*models.User, error) {
	return s.users.FindAll(ctx)
}

// SetEnabled toggles an account's enabled flag. Admin only.
func (s *UserService) SetEnabled(ctx context.Context, id uint, enabled bool) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Enabled = enabled
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "account enabled flag changed", logger.Fields{"user_id": id, "enabled": enabled})
	return user, nil
}

// Delete removes an account by id. Admin only.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}
