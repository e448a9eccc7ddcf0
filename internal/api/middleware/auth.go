package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "auth-token"

// ContextUserID is the echo context key the Auth middleware stores the
// verified user ID under.
const ContextUserID = "user_id"

// Auth performs the full cryptographic session check for API routes: it
// reads the session cookie, verifies signature and expiry through the token
// service, and injects the user ID into the request context. Every failure
// mode is a plain 401; callers never learn why a session was rejected.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			userID, ok := tokens.Verify(cookie.Value)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
