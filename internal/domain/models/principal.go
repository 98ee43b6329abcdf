package models

// Principal is the authenticated identity attached to a request. It exists
// only for the duration of one request and is rebuilt from the bearer token
// every time; nothing about it is persisted or shared between requests.
type Principal struct {
	Username string
	Roles    []Role
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(r Role) bool {
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsAdmin is a convenience for the common admin check.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
