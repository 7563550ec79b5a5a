package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type role string

const (
	roleAdmin role = "admin"
	roleUser  role = "user"
)

type user struct {
	Username string
	Role     role
}

// identify resolves the demo bearer token to a user. Missing or unknown
// tokens fall back to the demo user so unauthenticated development flows
// keep working.
func (s *Server) identify(c echo.Context) user {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return user{Username: "demo_user", Role: roleUser}
	}
	switch token {
	case s.cfg.AdminToken:
		return user{Username: "admin", Role: roleAdmin}
	case s.cfg.UserToken:
		return user{Username: "standard_user", Role: roleUser}
	}
	return user{Username: "demo_user", Role: roleUser}
}

// requireAdmin refuses non-admin callers with the claims API's wording.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if u := s.identify(c); u.Role != roleAdmin {
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("Insufficient permissions. Required role: %s", roleAdmin))
		}
		return next(c)
	}
}
