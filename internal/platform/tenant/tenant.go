// Package tenant resolves the requesting hospital for each request and makes
// it available as an explicit value. Handlers pass the hospital id into every
// service call; nothing below the HTTP layer reads ambient request state.
package tenant

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const hospitalIDKey contextKey = "hospital_id"

// HeaderName is the request header carrying the requester's hospital id.
const HeaderName = "X-Hospital-ID"

// Middleware extracts the requester's hospital id from the X-Hospital-ID
// header. An absent header leaves the request without hospital context;
// handlers that require one reject such requests via HospitalID.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderName)
			if raw == "" {
				return next(c)
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid hospital identifier")
			}

			ctx := context.WithValue(c.Request().Context(), hospitalIDKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(string(hospitalIDKey), id)

			return next(c)
		}
	}
}

// HospitalID returns the requester's hospital id, failing with 403 when the
// request carries no hospital context.
func HospitalID(c echo.Context) (uuid.UUID, error) {
	if id, ok := c.Get(string(hospitalIDKey)).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, echo.NewHTTPError(http.StatusForbidden, "hospital context required")
}

// FromContext retrieves the hospital id from a plain context, or uuid.Nil.
func FromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(hospitalIDKey).(uuid.UUID)
	return id
}
