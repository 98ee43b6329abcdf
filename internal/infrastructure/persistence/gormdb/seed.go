package gormdb

import (
	"context"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/pkg/logger"
)

// Seed ensures the role table is populated and, when enabled, creates the
// demo and admin accounts. Existing accounts are left untouched, so the
// seeder is safe to run on every boot.
func Seed(ctx context.Context, cfg *config.SeedConfig, users repository.UserRepository, hasher crypto.PasswordHasher, log logger.Logger) error {
	log = log.WithComponent("seed")

	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin} {
		if _, err := users.EnsureRole(ctx, role); err != nil {
			return err
		}
	}

	if !cfg.Enabled {
		return nil
	}

	if cfg.DemoUsername != "" && cfg.DemoPassword != "" {
		err := seedAccount(ctx, users, hasher, log, seedAccountParams{
			username: cfg.DemoUsername,
			email:    cfg.DemoEmail,
			password: cfg.DemoPassword,
			first:    "Demo",
			last:     "User",
			roles:    []models.Role{models.RoleUser},
		})
		if err != nil {
			return err
		}
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		err := seedAccount(ctx, users, hasher, log, seedAccountParams{
			username: cfg.AdminUsername,
			email:    cfg.AdminEmail,
			password: cfg.AdminPassword,
			first:    "Admin",
			last:     "User",
			roles:    []models.Role{models.RoleUser, models.RoleAdmin},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

type seedAccountParams struct {
	username string
	email    string
	password string
	first    string
	last     string
	roles    []models.Role
}

func seedAccount(ctx context.Context, users repository.UserRepository, hasher crypto.PasswordHasher, log logger.Logger, p seedAccountParams) error {
	exists, err := users.ExistsByUsername(ctx, p.username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := hasher.Hash(p.password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     p.username,
		Email:        p.email,
		PasswordHash: hash,
		FirstName:    p.first,
		LastName:     p.last,
		Enabled:      true,
	}
	if err := users.Save(ctx, user); err != nil {
		return err
	}
	for _, role := range p.roles {
		if err := users.AssignRole(ctx, user.ID, role); err != nil {
			return err
		}
	}

	log.Info(ctx, "seeded account", logger.Fields{"username": p.username})
	return nil
}
