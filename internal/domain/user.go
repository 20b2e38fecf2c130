package domain

import "time"

// Role distinguishes citizens from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether the value belongs to the closed role enum.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the account model for both citizens and administrators.
// PasswordHash never leaves the service boundary.
type User struct {
	ID                   string
	Email                string
	PasswordHash         string
	Name                 string
	Phone                string
	Role                 Role
	AvatarURL            *string
	NotificationsEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
