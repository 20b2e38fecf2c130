package domain

import "time"

// ReportStatus enumerates lifecycle states for citizen reports.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
	ReportStatusRejected   ReportStatus = "rejected"
)

// ValidReportStatus reports whether the value belongs to the closed status enum.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved, ReportStatusRejected:
		return true
	}
	return false
}

// ReportPriority enumerates triage urgency.
type ReportPriority string

const (
	ReportPriorityLow    ReportPriority = "low"
	ReportPriorityMedium ReportPriority = "medium"
	ReportPriorityHigh   ReportPriority = "high"
)

// ValidReportPriority reports whether the value belongs to the closed priority enum.
func ValidReportPriority(p ReportPriority) bool {
	switch p {
	case ReportPriorityLow, ReportPriorityMedium, ReportPriorityHigh:
		return true
	}
	return false
}

// ValidCoordinates checks latitude in [-90,90] and longitude in [-180,180).
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon < 180
}

// Report is the aggregate for citizen-submitted urban issues.
// UserID is the owning account and is immutable after creation. The
// contact fields may describe a non-registered reporter and are never
// derived from the owning account. UserName and CategoryName are
// read-only display fields joined by the repository.
type Report struct {
	ID           string
	UserID       string
	CategoryID   string
	Title        string
	Description  string
	Status       ReportStatus
	Priority     ReportPriority
	Latitude     float64
	Longitude    float64
	Address      string
	ImageURLs    []string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	AdminNotes   *string
	UserName     *string
	CategoryName *string
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
