package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/urban-report-service/internal/api/http/handlers"
	"github.com/spec-kit/urban-report-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Reports        *handlers.ReportsHandler
	Comments       *handlers.CommentsHandler
	Users          *handlers.UsersHandler
	Categories     *handlers.CategoriesHandler
	Uploads        *handlers.UploadsHandler
	AuthMiddleware *auth.Middleware
}

type route struct {
	method  string
	path    string
	access  auth.Access
	handler fiber.Handler
}

// RegisterRoutes wires HTTP routes. The route table is the single place
// where per-route role requirements are declared; record-level
// ownership checks live in the services.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	routes := []route{
		{fiber.MethodGet, "/health/live", auth.AccessPublic, cfg.Health.Live},
		{fiber.MethodGet, "/health/ready", auth.AccessPublic, cfg.Health.Ready},

		{fiber.MethodPost, "/api/auth/register", auth.AccessPublic, cfg.Auth.Register},
		{fiber.MethodPost, "/api/auth/login", auth.AccessPublic, cfg.Auth.Login},

		{fiber.MethodGet, "/api/categories", auth.AccessPublic, cfg.Categories.List},

		{fiber.MethodPost, "/api/reports", auth.AccessAuthenticated, cfg.Reports.Create},
		{fiber.MethodGet, "/api/reports", auth.AccessAuthenticated, cfg.Reports.List},
		// declared before /api/reports/:id so "stats" is not captured as an id
		{fiber.MethodGet, "/api/reports/stats", auth.AccessAdmin, cfg.Reports.Stats},
		{fiber.MethodGet, "/api/reports/:id", auth.AccessAuthenticated, cfg.Reports.Get},
		{fiber.MethodPut, "/api/reports/:id", auth.AccessAuthenticated, cfg.Reports.Update},
		{fiber.MethodDelete, "/api/reports/:id", auth.AccessAdmin, cfg.Reports.Delete},

		{fiber.MethodPost, "/api/comments", auth.AccessAuthenticated, cfg.Comments.Create},
		{fiber.MethodGet, "/api/comments/report/:reportId", auth.AccessAuthenticated, cfg.Comments.ListByReport},
		{fiber.MethodDelete, "/api/comments/:id", auth.AccessAdmin, cfg.Comments.Delete},

		{fiber.MethodGet, "/api/users/me", auth.AccessAuthenticated, cfg.Users.Me},
		{fiber.MethodPut, "/api/users/me", auth.AccessAuthenticated, cfg.Users.UpdateMe},
		{fiber.MethodGet, "/api/users", auth.AccessAdmin, cfg.Users.List},
		{fiber.MethodPost, "/api/users", auth.AccessAdmin, cfg.Users.Create},
		{fiber.MethodDelete, "/api/users/:id", auth.AccessAdmin, cfg.Users.Delete},

		{fiber.MethodPost, "/api/upload", auth.AccessAuthenticated, cfg.Uploads.Upload},
	}

	for _, r := range routes {
		if r.access == auth.AccessPublic {
			app.Add(r.method, r.path, r.handler)
			continue
		}
		app.Add(r.method, r.path, cfg.AuthMiddleware.Handle, auth.Requires(r.access), r.handler)
	}
}
