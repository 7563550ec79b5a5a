// Package middleware carries the echo middleware shared by the intake
// server: request identity, structured request logging, and panic recovery.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured log line per request. It runs inside RequestID
// so the request_id field is always populated.
func Logger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			rid, _ := c.Get(RequestIDKey).(string)

			event := log.Info()
			if err != nil {
				event = log.Error().Err(err)
			}
			event.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return nil
		}
	}
}
