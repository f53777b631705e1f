package middleware

import (
	"log/slog"
	"time"

	"khabar/utils/logger"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware logs request completion with method, path, status, and
// timing. The health endpoint is skipped to keep probe noise out of the
// logs.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/v1/health" {
				return next(c)
			}

			start := time.Now()
			ctx := req.Context()

			err := next(c)

			status := c.Response().Status
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if requestID, ok := ctx.Value(logger.RequestIDKey).(string); ok {
				attrs = append(attrs, "request_id", requestID)
			}

			switch {
			case status >= 500:
				baseLogger.ErrorContext(ctx, "request completed", attrs...)
			case status >= 400:
				baseLogger.WarnContext(ctx, "request completed", attrs...)
			default:
				baseLogger.InfoContext(ctx, "request completed", attrs...)
			}

			if err != nil {
				baseLogger.ErrorContext(ctx, "request error",
					"method", req.Method, "path", req.URL.Path, "error", err)
			}

			return err
		}
	}
}
