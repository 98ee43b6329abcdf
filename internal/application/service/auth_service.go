// Package service implements the application services that sit between the
// HTTP handlers and the repositories.
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

// AuthService handles registration and credential verification.
type AuthService struct {
	users  repository.UserRepository
	hasher crypto.PasswordHasher
	codec  crypto.TokenCodec
	log    logger.Logger
}

// NewAuthService wires the auth service.
func NewAuthService(users repository.UserRepository, hasher crypto.PasswordHasher, codec crypto.TokenCodec, log logger.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, codec: codec, log: log.WithComponent("auth_service")}
}

// Register creates an account with the default user role.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.ErrDuplicate("Username", req.Username)
	}
	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.ErrDuplicate("Email", req.Email)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error(ctx, "hash password failed", err)
		return nil, errors.ErrInternalServer.WithError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Enabled:      true,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.users.AssignRole(ctx, user.ID, models.RoleUser); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", logger.Fields{"username": user.Username})
	return user, nil
}

// Login verifies credentials and issues a token. Every credential failure
// collapses into the same generic error so responses cannot be used to
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Enabled {
		return nil, errors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.log.Warn(ctx, "login failed", logger.Fields{"username": req.Username})
		return nil, errors.ErrInvalidCredentials
	}

	roles := user.RoleSet()
	token, err := s.codec.Issue(user.Username, roles)
	if err != nil {
		s.log.Error(ctx, "issue token failed", err, logger.Fields{"username": user.Username})
		return nil, errors.ErrInternalServer.WithError(err)
	}

	return &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Roles:    models.RoleNames(roles),
	}, nil
}

// AdminLogin is Login plus an admin role requirement. A valid non-admin
// credential is rejected with the dedicated access-denied message.
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	resp, err := s.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	for _, role := range resp.Roles {
		if role == string(models.RoleAdmin) {
			return resp, nil
		}
	}
	s.log.Warn(ctx, "admin login rejected for non-admin account", logger.Fields{"username": req.Username})
	return nil, errors.ErrAdminRequired
}
