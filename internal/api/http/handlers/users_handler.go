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

// UsersHandler exposes profile and admin account-management endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// Me GET /api/users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(principal.User)})
}

// UpdateMe PUT /api/users/me.
func (h *UsersHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Context(), principal.Identity.UserID, service.UpdateProfileInput{
		Email:                req.Email,
		Name:                 req.Name,
		Phone:                req.Phone,
		AvatarURL:            req.AvatarURL,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// List GET /api/users (admin-only via route policy).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /api/users (admin-only via route policy; role settable).
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Context(), service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete DELETE /api/users/:id (admin-only via route policy).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("user", nil)
	}
	return c.SendStatus(http.StatusNoContent)
}
