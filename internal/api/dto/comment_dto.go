package dto

import (
	"time"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

// CreateCommentRequest payload. Some clients send "message" instead of
// "content"; Body returns whichever is present.
type CreateCommentRequest struct {
	ReportID string `json:"report_id" validate:"required"`
	Content  string `json:"content"`
	Message  string `json:"message"`
}

// Body returns the comment text, preferring "content".
func (r CreateCommentRequest) Body() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Message
}

// CommentResponse is the thread entry view.
type CommentResponse struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"report_id"`
	UserID    string    `json:"user_id"`
	UserName  *string   `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentResponse maps a domain comment to its API view.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ReportID:  comment.ReportID,
		UserID:    comment.UserID,
		UserName:  comment.UserName,
		Content:   comment.Content,
		IsAdmin:   comment.IsAdmin,
		CreatedAt: comment.CreatedAt,
	}
}
