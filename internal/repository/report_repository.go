package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/persistence"
)

// ReportFilter captures listing parameters. Nil fields are ignored.
type ReportFilter struct {
	Status     *domain.ReportStatus
	CategoryID *string
	UserID     *string
}

// ReportPatch is a sparse update for a report. The caller decides which
// fields are present; absent fields are left untouched by the adapter.
type ReportPatch struct {
	Title       *string
	Description *string
	CategoryID  *string
	Status      *domain.ReportStatus
	Priority    *domain.ReportPriority
	AdminNotes  *string
	ResolvedAt  *time.Time
}

// ReportRepository encapsulates report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.Report, error)
	Update(ctx context.Context, id string, patch ReportPatch) error
	Delete(ctx context.Context, id string) (bool, error)
	StatsByCategory(ctx context.Context) ([]domain.CategoryStats, error)
}

type reportRepository struct {
	db persistence.Querier
}

// NewReportRepository instantiates the Postgres-backed repository.
func NewReportRepository(db persistence.Querier) ReportRepository {
	return &reportRepository{db: db}
}

const reportSelect = `
        SELECT r.id, r.user_id, r.category_id, r.title, r.description, r.status, r.priority,
               r.latitude, r.longitude, r.address, r.image_urls,
               r.contact_name, r.contact_email, r.contact_phone, r.admin_notes,
               u.name AS user_name, c.name AS category_name,
               r.resolved_at, r.created_at, r.updated_at
        FROM reports r
        LEFT JOIN users u ON r.user_id = u.id
        LEFT JOIN categories c ON r.category_id = c.id`

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (user_id, category_id, title, description, status, priority,
                             latitude, longitude, address, image_urls,
                             contact_name, contact_email, contact_phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		report.UserID,
		report.CategoryID,
		report.Title,
		report.Description,
		report.Status,
		report.Priority,
		report.Latitude,
		report.Longitude,
		report.Address,
		report.ImageURLs,
		report.ContactName,
		report.ContactEmail,
		report.ContactPhone,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	query := reportSelect + ` WHERE r.id=$1`
	var report domain.Report
	if err := scanReport(r.db.QueryRow(ctx, query, id), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter) ([]domain.Report, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("r.status=$%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("r.category_id=$%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("r.user_id=$%d", len(args)))
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY r.created_at DESC",
		reportSelect, strings.Join(clauses, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Report{}
	for rows.Next() {
		var report domain.Report
		if err := scanReport(rows, &report); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}

func (r *reportRepository) Update(ctx context.Context, id string, patch ReportPatch) error {
	query, args := buildSparseUpdate("reports", id, []sparseField{
		{"title", patch.Title},
		{"description", patch.Description},
		{"category_id", patch.CategoryID},
		{"status", patch.Status},
		{"priority", patch.Priority},
		{"admin_notes", patch.AdminNotes},
		{"resolved_at", patch.ResolvedAt},
	})
	if query == "" {
		return nil
	}
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *reportRepository) StatsByCategory(ctx context.Context) ([]domain.CategoryStats, error) {
	const query = `
        SELECT c.name, c.icon, c.color,
               COUNT(r.id) AS total,
               COUNT(r.id) FILTER (WHERE r.status = 'pending') AS pending,
               COUNT(r.id) FILTER (WHERE r.status = 'in_progress') AS in_progress,
               COUNT(r.id) FILTER (WHERE r.status = 'resolved') AS resolved
        FROM categories c
        LEFT JOIN reports r ON c.id = r.category_id
        GROUP BY c.id, c.name, c.icon, c.color
        ORDER BY total DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.CategoryStats{}
	for rows.Next() {
		var stats domain.CategoryStats
		if err := rows.Scan(
			&stats.Category,
			&stats.Icon,
			&stats.Color,
			&stats.Total,
			&stats.Pending,
			&stats.InProgress,
			&stats.Resolved,
		); err != nil {
			return nil, err
		}
		result = append(result, stats)
	}
	return result, rows.Err()
}

func scanReport(row pgx.Row, report *domain.Report) error {
	return row.Scan(
		&report.ID,
		&report.UserID,
		&report.CategoryID,
		&report.Title,
		&report.Description,
		&report.Status,
		&report.Priority,
		&report.Latitude,
		&report.Longitude,
		&report.Address,
		&report.ImageURLs,
		&report.ContactName,
		&report.ContactEmail,
		&report.ContactPhone,
		&report.AdminNotes,
		&report.UserName,
		&report.CategoryName,
		&report.ResolvedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
}
