package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// QueryTimeout bounds the request context handed to services, and so every store round trip.
func QueryTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
