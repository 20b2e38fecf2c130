package dto

import (
	"time"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

// RegisterRequest payload for self-service signup.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest is the admin-only account creation payload.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateProfileRequest is the sparse profile patch.
type UpdateProfileRequest struct {
	Email                *string `json:"email" validate:"omitempty,email"`
	Name                 *string `json:"name" validate:"omitempty,min=1"`
	Phone                *string `json:"phone"`
	AvatarURL            *string `json:"avatar_url"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

// UserResponse is the public account view; the password hash is never
// part of it.
type UserResponse struct {
	ID                   string      `json:"id"`
	Email                string      `json:"email"`
	Name                 string      `json:"name"`
	Phone                string      `json:"phone"`
	Role                 domain.Role `json:"role"`
	AvatarURL            *string     `json:"avatar_url,omitempty"`
	NotificationsEnabled bool        `json:"notifications_enabled"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewUserResponse maps the domain account to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                   user.ID,
		Email:                user.Email,
		Name:                 user.Name,
		Phone:                user.Phone,
		Role:                 user.Role,
		AvatarURL:            user.AvatarURL,
		NotificationsEnabled: user.NotificationsEnabled,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}
