package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Recovery converts handler panics into 500 responses instead of dropping the
// connection. The stack is logged, never returned to the caller.
func Recovery(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					recovered, ok := r.(error)
					if !ok {
						recovered = fmt.Errorf("%v", r)
					}

					stack := make([]byte, 4<<10)
					length := runtime.Stack(stack, false)

					rid, _ := c.Get(RequestIDKey).(string)
					log.Error().
						Err(recovered).
						Str("request_id", rid).
						Str("path", c.Request().URL.Path).
						Str("stack", string(stack[:length])).
						Msg("panic recovered")

					err = echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
				}
			}()
			return next(c)
		}
	}
}
