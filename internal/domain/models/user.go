package models

import "time"

// User is an account row in the credential store. PasswordHash holds a
// bcrypt hash and never leaves the persistence layer in API responses.
type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"column:password;not null" json:"-"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Enabled      bool         `gorm:"default:true" json:"enabled"`
	Roles        []RoleRecord `gorm:"many2many:user_roles" json:"roles"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// TableName sets the users table name.
func (User) TableName() string { return "users" }

// RoleSet returns the user's validated role set. Unknown role names in the
// join table are skipped.
func (u *User) RoleSet() []Role {
	roles := make([]Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		if role, ok := ParseRole(r.Name); ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// HasRole reports whether the user's validated role set contains r.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.RoleSet() {
		if have == r {
			return true
		}
	}
	return false
}
