package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/urban-report-service/internal/observability"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// RegisterMiddlewares installs the global middleware chain: per-request
// timeout, panic recovery plus error mapping, and request logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(requestTimeout(timeout))
	app.Use(errorHandling(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeout(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandling converts errors (and panics) escaping the handlers into
// the JSON error envelope. Handlers return domain errors; anything else
// is treated as internal.
func errorHandling(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Path()),
				)
				err = writeError(c, apperrors.ToDomainError(fiber.ErrInternalServerError))
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		domainErr := apperrors.ToDomainError(err)
		if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
			metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return writeError(c, domainErr)
	}
}

func writeError(c *fiber.Ctx, derr *apperrors.DomainError) error {
	body := fiber.Map{
		"code":    derr.Code,
		"message": derr.Message,
	}
	if len(derr.Details) > 0 {
		body["details"] = derr.Details
	}
	return c.Status(derr.HTTPStatus).JSON(fiber.Map{"error": body})
}
