package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-Id"

// RequestIDMiddleware ensures every request has a unique X-Request-Id.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, id)
			c.Set("request_id", id)
			return next(c)
		}
	}
}

// LoggingMiddleware logs each request with structured fields. Session routes
// also carry the session id, and seeded generations the seed, so a menu can
// be traced back and reproduced from the log alone. Server errors log at error level.
func LoggingMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			attrs := []any{
				"request_id", c.Get("request_id"),
				"method", c.Request().Method,
				"route", c.Path(),
				"status", status,
				"latency_ms", time.Since(start).Milliseconds(),
			}
			if id := c.Param("id"); id != "" {
				attrs = append(attrs, "session_id", id)
			}
			if seed := c.QueryParam("seed"); seed != "" {
				attrs = append(attrs, "seed", seed)
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(c.Request().Context(), level, "request", attrs...)
			return err
		}
	}
}
