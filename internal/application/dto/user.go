package dto

import (
	"time"

	"github.com/home4paws/home4paws/internal/domain/models"
)

// UserResponse is the public view of an account. The password hash never
// appears here.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Enabled   bool      `json:"enabled"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user row to its API view.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Enabled:   u.Enabled,
		Roles:     models.RoleNames(u.RoleSet()),
		CreatedAt: u.CreatedAt,
	}
}

// NewUserResponses maps a list of user rows.
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return out
}

// UpdateProfileRequest changes the caller's own profile fields.
type UpdateProfileRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"firstName" binding:"max=50"`
	LastName  string `json:"lastName" binding:"max=50"`
}

// ChangePasswordRequest rotates the caller's password after verifying the
// current one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// SetEnabledRequest is the admin toggle for account status.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
