package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/api/middleware"
	"github.com/roastify/roast-api/internal/core/service"
)

// setSessionCookie attaches the signed session token as an HTTP-only,
// same-site-strict cookie. Secure is enabled only in production so local
// development over plain HTTP keeps working.
func setSessionCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
