// Package models defines the persistent entities and the request-scoped
// principal for the Home4Paws backend.
package models

// Role is the closed role vocabulary. Role strings coming out of the
// credential store are validated through ParseRole; anything outside this
// set is dropped at the boundary.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// ParseRole validates a stored role name against the closed vocabulary.
func ParseRole(name string) (Role, bool) {
	switch Role(name) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// RoleNames converts a role set to its string form for token claims and
// API responses.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}

// ParseRoles validates a list of stored role names, dropping unknown
// entries. The second return value lists the names that were rejected.
func ParseRoles(names []string) ([]Role, []string) {
	roles := make([]Role, 0, len(names))
	var rejected []string
	for _, name := range names {
		if role, ok := ParseRole(name); ok {
			roles = append(roles, role)
		} else {
			rejected = append(rejected, name)
		}
	}
	return roles, rejected
}

// RoleRecord is a row in the roles table.
type RoleRecord struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// TableName sets the roles table name.
func (RoleRecord) TableName() string { return "roles" }
