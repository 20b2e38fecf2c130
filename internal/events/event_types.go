package events

import (
	"time"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReportCreated       EventType = "report_created"
	EventReportStatusChanged EventType = "report_status_changed"
	EventCommentAdded        EventType = "comment_added"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ReportID  string      `json:"report_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReportCreatedPayload payload.
type ReportCreatedPayload struct {
	CategoryID string                `json:"category_id"`
	Title      string                `json:"title"`
	Priority   domain.ReportPriority `json:"priority"`
}

// ReportStatusChangedPayload payload.
type ReportStatusChangedPayload struct {
	OwnerID   string              `json:"owner_id"`
	OldStatus domain.ReportStatus `json:"old_status"`
	NewStatus domain.ReportStatus `json:"new_status"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID   string `json:"comment_id"`
	OwnerID     string `json:"owner_id"`
	IsAdmin     bool   `json:"is_admin"`
	BodyPreview string `json:"body_preview"`
}
