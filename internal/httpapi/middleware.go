package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const ctxUserID = "userID"

// requireAuth guards protected routes: it extracts the bearer token,
// verifies it and attaches the caller's user id to the request
// context. It never touches persistent state.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		uid, err := s.tokens.VerifyAccess(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		c.Set(ctxUserID, uid)
		return next(c)
	}
}

func requesterID(c echo.Context) int64 {
	id, _ := c.Get(ctxUserID).(int64)
	return id
}
