package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Audit emits one structured audit event per request after the handler
// completes. Audit events are distinct from the request log: they record
// who touched what under which hospital, and are intended to be shipped
// to long-term retention.
func Audit(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			rid, _ := c.Get("request_id").(string)
			hospitalID := ""
			if v := c.Get("hospital_id"); v != nil {
				hospitalID = fmt.Sprintf("%v", v)
			}

			logger.Info().
				Str("audit", "access").
				Str("request_id", rid).
				Str("hospital_id", hospitalID).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("audit event")

			return err
		}
	}
}
