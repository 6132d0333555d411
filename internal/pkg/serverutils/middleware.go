package serverutils

import (
	"errors"
	"fmt"
	"time"

	"healthsphere-ml-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the error taxonomy onto HTTP statuses. Handlers
// and services just return errors; this is the single place that decides what
// the caller sees.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
		}

		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFoundErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		// ProcessingError and anything unexpected surface as a generic server error.
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(err.Error()))
	}
}

// RequestLoggerMiddleware logs method, path, status and latency for every
// request and exposes the latency via X-Process-Time.
func RequestLoggerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		elapsed := time.Since(start)
		ctx.Set("X-Process-Time", fmt.Sprintf("%.3f", elapsed.Seconds()))

		sysLogger.Info("http", "request completed", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"latency_ms": elapsed.Milliseconds(),
		})
		return err
	}
}
