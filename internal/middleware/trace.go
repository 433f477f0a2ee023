package middleware

import (
	"context"

	"smartShop/business/recommendation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware attaches a trace id to every request. Inbound
// X-Trace-ID headers are honored so upstream proxies can correlate.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get("X-Trace-ID")
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommendation.TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", tid)

			return next(c)
		}
	}
}
