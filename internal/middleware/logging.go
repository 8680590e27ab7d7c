package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logging writes a structured line for each HTTP request and attaches a
// request-scoped logger to the request context for downstream handlers.
func Logging(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			rid, _ := c.Get(ContextKeyRequestID).(string)
			reqLogger := base.With().Str("request_id", rid).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(reqLogger.WithContext(req.Context())))

			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			event := reqLogger.Info()
			if status := c.Response().Status; status >= 500 {
				event = reqLogger.Error()
			} else if status >= 400 {
				event = reqLogger.Warn()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", latency).
				Err(err).
				Msg("http request")

			return err
		}
	}
}
