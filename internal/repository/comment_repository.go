package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/persistence"
)

// CommentRepository manages report thread comments. Comments are
// immutable once created; there is no update operation.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByReport(ctx context.Context, reportID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type commentRepository struct {
	db persistence.Querier
}

// NewCommentRepository builds the Postgres-backed repository.
func NewCommentRepository(db persistence.Querier) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (report_id, user_id, content, is_admin)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		comment.ReportID,
		comment.UserID,
		comment.Content,
		comment.IsAdmin,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	const query = `
        SELECT cm.id, cm.report_id, cm.user_id, cm.content, cm.is_admin, u.name, cm.created_at
        FROM comments cm
        LEFT JOIN users u ON cm.user_id = u.id
        WHERE cm.id=$1`

	var comment domain.Comment
	if err := scanComment(r.db.QueryRow(ctx, query, id), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByReport(ctx context.Context, reportID string) ([]domain.Comment, error) {
	const query = `
        SELECT cm.id, cm.report_id, cm.user_id, cm.content, cm.is_admin, u.name, cm.created_at
        FROM comments cm
        LEFT JOIN users u ON cm.user_id = u.id
        WHERE cm.report_id=$1
        ORDER BY cm.created_at ASC`

	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := scanComment(rows, &comment); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanComment(row pgx.Row, comment *domain.Comment) error {
	return row.Scan(
		&comment.ID,
		&comment.ReportID,
		&comment.UserID,
		&comment.Content,
		&comment.IsAdmin,
		&comment.UserName,
		&comment.CreatedAt,
	)
}
