package dto

import (
	"time"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

// CreateReportRequest payload. Coordinates are pointers so that a
// missing field is distinguishable from a zero value.
type CreateReportRequest struct {
	CategoryID   string   `json:"category_id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lt=180"`
	Address      string   `json:"address" validate:"required"`
	ImageURLs    []string `json:"image_urls"`
	ContactName  *string  `json:"contact_name"`
	ContactEmail *string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone"`
}

// UpdateReportRequest is the sparse report patch.
type UpdateReportRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	CategoryID  *string `json:"category_id" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress resolved rejected"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	AdminNotes  *string `json:"admin_notes"`
}

// ReportResponse is the full report view including joined display fields.
type ReportResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	CategoryID   string                `json:"category_id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Status       domain.ReportStatus   `json:"status"`
	Priority     domain.ReportPriority `json:"priority"`
	Latitude     float64               `json:"latitude"`
	Longitude    float64               `json:"longitude"`
	Address      string                `json:"address"`
	ImageURLs    []string              `json:"image_urls"`
	ContactName  *string               `json:"contact_name,omitempty"`
	ContactEmail *string               `json:"contact_email,omitempty"`
	ContactPhone *string               `json:"contact_phone,omitempty"`
	AdminNotes   *string               `json:"admin_notes,omitempty"`
	UserName     *string               `json:"user_name,omitempty"`
	CategoryName *string               `json:"category_name,omitempty"`
	ResolvedAt   *time.Time            `json:"resolved_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewReportResponse maps a domain report to its API view.
func NewReportResponse(report *domain.Report) ReportResponse {
	imageURLs := report.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return ReportResponse{
		ID:           report.ID,
		UserID:       report.UserID,
		CategoryID:   report.CategoryID,
		Title:        report.Title,
		Description:  report.Description,
		Status:       report.Status,
		Priority:     report.Priority,
		Latitude:     report.Latitude,
		Longitude:    report.Longitude,
		Address:      report.Address,
		ImageURLs:    imageURLs,
		ContactName:  report.ContactName,
		ContactEmail: report.ContactEmail,
		ContactPhone: report.ContactPhone,
		AdminNotes:   report.AdminNotes,
		UserName:     report.UserName,
		CategoryName: report.CategoryName,
		ResolvedAt:   report.ResolvedAt,
		CreatedAt:    report.CreatedAt,
		UpdatedAt:    report.UpdatedAt,
	}
}
