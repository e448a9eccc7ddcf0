package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runGuard(t *testing.T, path string, withCookie bool) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "anything"})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	passed := false
	handler := Guard()(func(c echo.Context) error {
		passed = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, passed
}

func TestGuard_ProtectedWithoutSession_RedirectsToLogin(t *testing.T) {
	rec, passed := runGuard(t, "/dashboard", false)
	if passed {
		t.Fatalf("expected redirect, handler ran")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_ProtectedWithSession_PassesThrough(t *testing.T) {
	rec, passed := runGuard(t, "/roast", true)
	if !passed {
		t.Fatalf("expected handler to run, got %d redirect", rec.Code)
	}
}

// The guard only checks presence: navigating to /login with any cookie value,
// even one that would never verify, redirects to the dashboard.
func TestGuard_AuthPageWithSession_RedirectsToDashboard(t *testing.T) {
	rec, passed := runGuard(t, "/login", true)
	if passed {
		t.Fatalf("expected redirect, handler ran")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestGuard_AuthPageWithoutSession_PassesThrough(t *testing.T) {
	_, passed := runGuard(t, "/signup", false)
	if !passed {
		t.Fatalf("expected handler to run")
	}
}

func TestGuard_UnlistedPath_AlwaysPasses(t *testing.T) {
	if _, passed := runGuard(t, "/auth/signin", false); !passed {
		t.Fatalf("API path without session should pass")
	}
	if _, passed := runGuard(t, "/auth/signin", true); !passed {
		t.Fatalf("API path with session should pass")
	}
}
