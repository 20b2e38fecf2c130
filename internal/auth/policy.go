package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/urban-report-service/internal/domain"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// Access is the route-level role requirement. Record-level ownership
// checks live in the services; this gate only decides whether the
// caller may reach a use case at all.
type Access int

const (
	// AccessPublic routes skip authentication entirely.
	AccessPublic Access = iota
	// AccessAuthenticated routes require any valid account.
	AccessAuthenticated
	// AccessAdmin routes require the admin role.
	AccessAdmin
)

// Requires returns the guard handler for the given access level.
// Public routes get a pass-through so the route table can declare every
// route uniformly.
func Requires(level Access) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if level == AccessPublic {
			return c.Next()
		}
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if level == AccessAdmin && principal.Identity.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
