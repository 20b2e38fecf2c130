package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/repository"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(context.Context, *domain.User) error { return nil }
func (s *stubUserRepo) Update(context.Context, string, repository.UserUpdate) error {
	return nil
}
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (s *stubUserRepo) List(context.Context) ([]domain.User, error) { return nil, nil }
func (s *stubUserRepo) Delete(context.Context, string) (bool, error) {
	return false, nil
}

func newTestApp(m *Middleware, level Access) *fiber.App {
	app := fiber.New()
	// map domain errors to status codes the way the HTTP layer does
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		derr := apperrors.ToDomainError(err)
		return c.Status(derr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": derr.Code}})
	})
	app.Get("/protected", m.Handle, Requires(level), func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.JSON(fiber.Map{"userId": principal.Identity.UserID})
	})
	return app
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", 60), &stubUserRepo{})
	app := newTestApp(m, AccessAuthenticated)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", 60), &stubUserRepo{})
	app := newTestApp(m, AccessAuthenticated)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Role: domain.RoleUser},
	}}
	app := newTestApp(NewMiddleware(tm, repo), AccessAuthenticated)

	token, _, err := tm.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsDeletedAccount(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newTestApp(NewMiddleware(tm, &stubUserRepo{}), AccessAuthenticated)

	token, _, err := tm.GenerateToken("ghost", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiresAdminForbidsCitizen(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Role: domain.RoleUser},
	}}
	app := newTestApp(NewMiddleware(tm, repo), AccessAdmin)

	token, _, err := tm.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestStoredRoleWinsOverTokenClaim(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	// the token still says admin but the account was demoted
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Role: domain.RoleUser},
	}}
	app := newTestApp(NewMiddleware(tm, repo), AccessAdmin)

	token, _, err := tm.GenerateToken("user-1", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
