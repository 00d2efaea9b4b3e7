package domain

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. Club roles grant write access to
// the matching announcement namespace; "admin" and "user" manage no club.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleIET   Role = "iet"
	RoleIEEE  Role = "ieee"
	RoleACM   Role = "acm"
	RoleIE    Role = "ie"
	RoleISTE  Role = "iste"
)

// Roles returns every valid role.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleIET, RoleIEEE, RoleACM, RoleIE, RoleISTE}
}

// ParseRole resolves a string to a known role. Unknown values are a
// validation error, never stored.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles() {
		if r == known {
			return r, nil
		}
	}
	return "", ErrUnknownRole
}

// CanManage reports whether the role may mutate the given club's
// announcements. The relation is an exact case-insensitive match between
// role and namespace; there is no superuser override.
func (r Role) CanManage(c Club) bool {
	return strings.EqualFold(string(r), string(c))
}

// User models a portal account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
