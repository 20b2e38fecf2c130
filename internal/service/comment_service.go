package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/events"
	"github.com/spec-kit/urban-report-service/internal/repository"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// CommentService manages report threads.
type CommentService struct {
	comments   repository.CommentRepository
	reports    repository.ReportRepository
	dispatcher events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(comments repository.CommentRepository, reports repository.ReportRepository, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, reports: reports, dispatcher: dispatcher}
}

// AddComment appends a comment to a report thread. IsAdmin is derived
// from the caller's role at creation time and never re-derived.
func (s *CommentService) AddComment(ctx context.Context, caller *domain.User, reportID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("content is required", nil)
	}

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report", nil)
		}
		return nil, apperrors.MapError(err)
	}

	comment := &domain.Comment{
		ReportID: report.ID,
		UserID:   caller.ID,
		Content:  content,
		IsAdmin:  caller.Role == domain.RoleAdmin,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}
	name := caller.Name
	comment.UserName = &name

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCommentAdded,
			ReportID:  report.ID,
			Actor:     events.Actor{UserID: caller.ID, Role: caller.Role},
			Timestamp: time.Now(),
			Payload: events.CommentAddedPayload{
				CommentID:   comment.ID,
				OwnerID:     report.UserID,
				IsAdmin:     comment.IsAdmin,
				BodyPreview: bodyPreview(comment.Content, 120),
			},
		})
	}
	return comment, nil
}

// ListComments returns a report's thread ordered oldest first.
func (s *CommentService) ListComments(ctx context.Context, reportID string) ([]domain.Comment, error) {
	comments, err := s.comments.ListByReport(ctx, reportID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}

// DeleteComment removes a comment; admin-only at the route level.
// Returns false for an already-gone comment.
func (s *CommentService) DeleteComment(ctx context.Context, id string) (bool, error) {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return deleted, nil
}

func bodyPreview(body string, max int) string {
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
