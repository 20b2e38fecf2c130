package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/urban-report-service/internal/api/dto"
	"github.com/spec-kit/urban-report-service/internal/auth"
	"github.com/spec-kit/urban-report-service/internal/service"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// CommentsHandler manages report thread endpoints.
type CommentsHandler struct {
	service *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{service: commentService}
}

// Create POST /api/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommentRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Context(), principal.User, req.ReportID, req.Body())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// ListByReport GET /api/comments/report/:reportId.
func (h *CommentsHandler) ListByReport(c *fiber.Ctx) error {
	comments, err := h.service.ListComments(c.Context(), c.Params("reportId"))
	if err != nil {
		return err
	}
	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, dto.NewCommentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete DELETE /api/comments/:id (admin-only via route policy).
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteComment(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("comment", nil)
	}
	return c.SendStatus(http.StatusNoContent)
}
