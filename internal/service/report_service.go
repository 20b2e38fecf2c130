package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/events"
	"github.com/spec-kit/urban-report-service/internal/repository"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

const statsCacheKey = "reports:stats:category"
const statsCacheTTL = time.Minute

// ReportService coordinates the report lifecycle and record-level
// authorization.
type ReportService struct {
	reports    repository.ReportRepository
	categories repository.CategoryRepository
	dispatcher events.Dispatcher
	cache      *redis.Client
}

// ReportDependencies bundles collaborators for the report service.
type ReportDependencies struct {
	ReportRepo   repository.ReportRepository
	CategoryRepo repository.CategoryRepository
	Dispatcher   events.Dispatcher
	Cache        *redis.Client
}

// CreateReportInput describes the report creation payload. UserID is
// never taken from the payload; the caller's identity is authoritative.
type CreateReportInput struct {
	CategoryID   string
	Title        string
	Description  string
	Latitude     float64
	Longitude    float64
	Address      string
	ImageURLs    []string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}

// UpdateReportInput is the patch for an existing report. Nil fields are
// left untouched.
type UpdateReportInput struct {
	Title       *string
	Description *string
	CategoryID  *string
	Status      *domain.ReportStatus
	Priority    *domain.ReportPriority
	AdminNotes  *string
}

// ReportListFilter captures listing parameters before ownership scoping.
type ReportListFilter struct {
	Status     *domain.ReportStatus
	CategoryID *string
	UserID     *string
}

// NewReportService constructs the service.
func NewReportService(deps ReportDependencies) *ReportService {
	return &ReportService{
		reports:    deps.ReportRepo,
		categories: deps.CategoryRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
	}
}

// CreateReport validates input and persists a new pending report owned
// by the caller.
func (s *ReportService) CreateReport(ctx context.Context, caller domain.Identity, input CreateReportInput) (*domain.Report, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.CategoryID) == "" {
		details["categoryId"] = "is required"
	}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		details["description"] = "is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		details["address"] = "is required"
	}
	if !domain.ValidCoordinates(input.Latitude, input.Longitude) {
		details["coordinates"] = "latitude must be within [-90,90] and longitude within [-180,180)"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid report", details)
	}

	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("unknown category", map[string]any{"categoryId": input.CategoryID})
		}
		return nil, apperrors.MapError(err)
	}

	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	report := &domain.Report{
		UserID:       caller.UserID,
		CategoryID:   input.CategoryID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Status:       domain.ReportStatusPending,
		Priority:     domain.ReportPriorityMedium,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Address:      strings.TrimSpace(input.Address),
		ImageURLs:    imageURLs,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventReportCreated,
		ReportID: report.ID,
		Actor:    events.Actor{UserID: caller.UserID, Role: caller.Role},
		Payload: events.ReportCreatedPayload{
			CategoryID: report.CategoryID,
			Title:      report.Title,
			Priority:   report.Priority,
		},
	})
	return report, nil
}

// GetReports lists reports newest first. Citizens are always scoped to
// their own reports regardless of the requested filter; admins may list
// everything.
func (s *ReportService) GetReports(ctx context.Context, caller domain.Identity, filter ReportListFilter) ([]domain.Report, error) {
	repoFilter := repository.ReportFilter{
		Status:     filter.Status,
		CategoryID: filter.CategoryID,
		UserID:     filter.UserID,
	}
	if !caller.IsAdmin() {
		userID := caller.UserID
		repoFilter.UserID = &userID
	}
	reports, err := s.reports.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reports, nil
}

// GetReport fetches a single report, enforcing ownership for citizens.
func (s *ReportService) GetReport(ctx context.Context, caller domain.Identity, id string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !caller.IsAdmin() && report.UserID != caller.UserID {
		return nil, apperrors.NewForbidden("not the report owner")
	}
	return report, nil
}

// UpdateReport applies a sparse patch under field-level authorization:
// admins may change anything including status, priority and admin
// notes; owners may edit content fields only while the report is still
// pending.
func (s *ReportService) UpdateReport(ctx context.Context, caller domain.Identity, id string, input UpdateReportInput) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if !caller.IsAdmin() {
		if report.UserID != caller.UserID {
			return nil, apperrors.NewForbidden("not the report owner")
		}
		if input.Status != nil || input.Priority != nil || input.AdminNotes != nil {
			return nil, apperrors.NewForbidden("only administrators may change status, priority or admin notes")
		}
		if report.Status != domain.ReportStatusPending {
			return nil, apperrors.NewForbidden("report can no longer be edited")
		}
	}

	if input.Status != nil && !domain.ValidReportStatus(*input.Status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
	}
	if input.Priority != nil && !domain.ValidReportPriority(*input.Priority) {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": *input.Priority})
	}
	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("unknown category", map[string]any{"categoryId": *input.CategoryID})
			}
			return nil, apperrors.MapError(err)
		}
	}

	patch := repository.ReportPatch{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Status:      input.Status,
		Priority:    input.Priority,
		AdminNotes:  input.AdminNotes,
	}
	// resolvedAt marks when the report entered resolved; it is kept if
	// the status later moves away again.
	if input.Status != nil && *input.Status == domain.ReportStatusResolved {
		now := time.Now()
		patch.ResolvedAt = &now
	}

	if err := s.reports.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report", nil)
		}
		return nil, apperrors.MapError(err)
	}

	updated, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if input.Status != nil && *input.Status != report.Status {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventReportStatusChanged,
			ReportID: report.ID,
			Actor:    events.Actor{UserID: caller.UserID, Role: caller.Role},
			Payload: events.ReportStatusChangedPayload{
				OwnerID:   report.UserID,
				OldStatus: report.Status,
				NewStatus: *input.Status,
			},
		})
	}
	return updated, nil
}

// DeleteReport removes a report. Returns false, not an error, when the
// record is already gone.
func (s *ReportService) DeleteReport(ctx context.Context, id string) (bool, error) {
	deleted, err := s.reports.Delete(ctx, id)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return deleted, nil
}

// StatsByCategory returns per-category report counts, cached briefly in
// Redis since the admin dashboard polls it.
func (s *ReportService) StatsByCategory(ctx context.Context) ([]domain.CategoryStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats []domain.CategoryStats
			if json.Unmarshal(cached, &stats) == nil {
				return stats, nil
			}
		}
	}

	stats, err := s.reports.StatsByCategory(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
		}
	}
	return stats, nil
}

func (s *ReportService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
