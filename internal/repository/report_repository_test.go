package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestReportUpdateSparseSingleField(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	title := "New title"
	mock.ExpectExec("UPDATE reports SET title=$1, updated_at=NOW() WHERE id=$2").
		WithArgs(&title, "report-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), "report-1", ReportPatch{Title: &title})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportUpdateSparseStatusAndResolvedAt(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	status := domain.ReportStatusResolved
	now := time.Now()
	mock.ExpectExec("UPDATE reports SET status=$1, resolved_at=$2, updated_at=NOW() WHERE id=$3").
		WithArgs(&status, &now, "report-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), "report-1", ReportPatch{Status: &status, ResolvedAt: &now})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportUpdateEmptyPatchIsNoop(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	err := repo.Update(context.Background(), "report-1", ReportPatch{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportUpdateMissingRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	title := "New title"
	mock.ExpectExec("UPDATE reports SET title=$1, updated_at=NOW() WHERE id=$2").
		WithArgs(&title, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), "missing", ReportPatch{Title: &title})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestReportDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectExec("DELETE FROM reports WHERE id=$1").
		WithArgs("report-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), "report-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec("DELETE FROM reports WHERE id=$1").
		WithArgs("report-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), "report-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestReportGetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(reportSelect + ` WHERE r.id=$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestReportListAppliesFilters(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	status := domain.ReportStatusPending
	userID := "user-1"
	query := reportSelect + " WHERE 1=1 AND r.status=$1 AND r.user_id=$2 ORDER BY r.created_at DESC"

	mock.ExpectQuery(query).
		WithArgs(status, userID).
		WillReturnRows(reportRows())

	listed, err := repo.List(context.Background(), ReportFilter{Status: &status, UserID: &userID})
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.NotNil(t, listed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func reportRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "category_id", "title", "description", "status", "priority",
		"latitude", "longitude", "address", "image_urls",
		"contact_name", "contact_email", "contact_phone", "admin_notes",
		"user_name", "category_name",
		"resolved_at", "created_at", "updated_at",
	})
}
