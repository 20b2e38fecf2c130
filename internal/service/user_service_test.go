package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

func TestCreateUserDefaultsAndRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, bcrypt.MinCost)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "ops@example.com",
		Password: "s3cret-pass",
		Name:     "Ops",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.True(t, created.NotificationsEnabled)

	// omitted role falls back to citizen
	created, err = svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "anna@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, created.Role)
}

func TestCreateUserInvalidRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "x@example.com",
		Password: "s3cret-pass",
		Role:     domain.Role("root"),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo(&domain.User{ID: "user-1", Email: "anna@example.com"})
	svc := NewUserService(users, bcrypt.MinCost)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "anna@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, "ALREADY_EXISTS", domainCode(t, err))
}

func TestUpdateProfileSparsePatch(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		ID:                   "user-1",
		Email:                "anna@example.com",
		Name:                 "Anna",
		NotificationsEnabled: true,
	})
	svc := NewUserService(users, bcrypt.MinCost)

	muted := false
	updated, err := svc.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{
		NotificationsEnabled: &muted,
	})
	require.NoError(t, err)
	assert.False(t, updated.NotificationsEnabled)
	// untouched fields survive the patch
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "anna@example.com", updated.Email)
}

func TestUpdateProfileMissingUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	name := "ghost"
	_, err := svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestDeleteUser(t *testing.T) {
	users := newFakeUserRepo(&domain.User{ID: "user-1", Email: "anna@example.com"})
	svc := NewUserService(users, bcrypt.MinCost)

	deleted, err := svc.DeleteUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
