package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/urban-report-service/internal/api/dto"
	"github.com/spec-kit/urban-report-service/internal/auth"
	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/service"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// ReportsHandler manages report endpoints.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Create POST /api/reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateReportRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.service.CreateReport(c.Context(), principal.Identity, service.CreateReportInput{
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		Address:      req.Address,
		ImageURLs:    req.ImageURLs,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewReportResponse(report)})
}

// List GET /api/reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	filter := service.ReportListFilter{}
	if status := c.Query("status"); status != "" {
		s := domain.ReportStatus(status)
		if !domain.ValidReportStatus(s) {
			return apperrors.NewValidationError("invalid status", map[string]any{"status": status})
		}
		filter.Status = &s
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	if userID := c.Query("user_id"); userID != "" {
		filter.UserID = &userID
	}

	reports, err := h.service.GetReports(c.Context(), principal.Identity, filter)
	if err != nil {
		return err
	}
	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.NewReportResponse(&reports[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/reports/:id.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	report, err := h.service.GetReport(c.Context(), principal.Identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(report)})
}

// Update PUT /api/reports/:id.
func (h *ReportsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateReportRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	input := service.UpdateReportInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		AdminNotes:  req.AdminNotes,
	}
	if req.Status != nil {
		status := domain.ReportStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.ReportPriority(*req.Priority)
		input.Priority = &priority
	}

	report, err := h.service.UpdateReport(c.Context(), principal.Identity, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(report)})
}

// Delete DELETE /api/reports/:id (admin-only via route policy).
func (h *ReportsHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteReport(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("report", nil)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Stats GET /api/reports/stats (admin-only via route policy).
func (h *ReportsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.StatsByCategory(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
