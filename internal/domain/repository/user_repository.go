// Package repository defines the persistence interfaces consumed by the
// application services. Implementations live under
// internal/infrastructure/persistence.
package repository

import (
	"context"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// UserRepository is the credential store contract. FindByUsername and
// FindByID load the user with roles preloaded.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Save(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error

	// EnsureRole returns the role row with the given name, creating it if
	// missing.
	EnsureRole(ctx context.Context, name models.Role) (*models.RoleRecord, error)

	// AssignRole adds the named role to the user's role set.
	AssignRole(ctx context.Context, userID uint, name models.Role) error
}
