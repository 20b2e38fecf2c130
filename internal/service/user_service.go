package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/urban-report-service/internal/auth"
	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/repository"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// UserService covers account management beyond self-service auth:
// profile edits plus the admin-only user administration paths.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// CreateUserInput is the admin-initiated account creation payload. Role
// is settable here, unlike self-service registration.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     domain.Role
}

// UpdateProfileInput is the sparse self-service profile patch.
type UpdateProfileInput struct {
	Email                *string
	Name                 *string
	Phone                *string
	AvatarURL            *string
	NotificationsEnabled *bool
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// GetUser loads a single account.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ListUsers returns all accounts; the DTO layer strips password hashes.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// CreateUser is the admin-only creation path where the role may be set.
// Route-level policy guarantees the caller is an admin.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewAlreadyExists("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Email:                email,
		PasswordHash:         hash,
		Name:                 strings.TrimSpace(input.Name),
		Phone:                strings.TrimSpace(input.Phone),
		Role:                 role,
		NotificationsEnabled: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExists("email already registered", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile applies a sparse patch to the caller's own account.
// Role is not part of the patch; owners cannot elevate themselves.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error) {
	patch := repository.UserUpdate{
		Email:                input.Email,
		Name:                 input.Name,
		Phone:                input.Phone,
		AvatarURL:            input.AvatarURL,
		NotificationsEnabled: input.NotificationsEnabled,
	}
	if err := s.users.Update(ctx, userID, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExists("email already registered", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return s.GetUser(ctx, userID)
}

// DeleteUser removes an account; admin-only at the route level.
func (s *UserService) DeleteUser(ctx context.Context, id string) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return deleted, nil
}
