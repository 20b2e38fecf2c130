package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

func TestUserGetByEmailMatchesCaseInsensitively(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	rows := pgxmock.NewRows([]string{
		"id", "email", "password_hash", "name", "phone", "role",
		"avatar_url", "notifications_enabled", "created_at", "updated_at",
	}).AddRow(
		"user-1", "anna@example.com", "hash", "Anna", "", domain.RoleUser,
		nil, true, time.Now(), time.Now(),
	)

	mock.ExpectQuery(`SELECT `+userColumns+` FROM users WHERE LOWER(email)=LOWER($1)`).
		WithArgs("Anna@Example.COM").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "Anna@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateSparsePatch(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	name := "Anna B"
	muted := false
	mock.ExpectExec("UPDATE users SET name=$1, notifications_enabled=$2, updated_at=NOW() WHERE id=$3").
		WithArgs(&name, &muted, "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), "user-1", UserUpdate{Name: &name, NotificationsEnabled: &muted})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateMissingRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	name := "ghost"
	mock.ExpectExec("UPDATE users SET name=$1, updated_at=NOW() WHERE id=$2").
		WithArgs(&name, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), "missing", UserUpdate{Name: &name})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("DELETE FROM users WHERE id=$1").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
