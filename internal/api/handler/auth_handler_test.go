package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/api/middleware"
	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
	"github.com/roastify/roast-api/internal/core/service"
)

// stubUserService backs handler tests with an in-memory account map keyed by
// normalized email. Passwords are compared in plain text; hashing is covered
// by the service tests.
type stubUserService struct {
	users     map[string]*domain.User
	passwords map[string]string
	nextID    int
}

func newStubUserService() *stubUserService {
	return &stubUserService{
		users:     make(map[string]*domain.User),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (s *stubUserService) Create(_ context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password too short", domain.ErrValidation)
	}
	if _, exists := s.users[email]; exists {
		return nil, domain.ErrUserExists
	}
	user := &domain.User{
		ID:            fmt.Sprintf("user_%d", s.nextID),
		Name:          name,
		Email:         email,
		FavoriteStyle: domain.DefaultFavoriteStyle,
		Level:         domain.DefaultLevel,
	}
	s.nextID++
	s.users[email] = user
	s.passwords[email] = password
	clone := *user
	return &clone, nil
}

func (s *stubUserService) Authenticate(_ context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(email)
	user, ok := s.users[email]
	if !ok || s.passwords[email] != password {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubUserService) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			if update.Name != "" {
				user.Name = update.Name
			}
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubUserService) Delete(_ context.Context, id string) (bool, error) {
	for email, user := range s.users {
		if user.ID == id {
			delete(s.users, email)
			delete(s.passwords, email)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserService) UpdatePassword(_ context.Context, id, current, newPassword string) (bool, error) {
	for email, user := range s.users {
		if user.ID == id {
			if s.passwords[email] != current {
				return false, nil
			}
			s.passwords[email] = newPassword
			return true, nil
		}
	}
	return false, nil
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Signup_SetsCookie(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret")
	h := NewAuthHandler(newStubUserService(), tokens, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"name":"Alice","email":"alice@x.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"email":"alice@x.com"`) {
		t.Fatalf("expected user in body, got %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password data leaked into response: %s", rec.Body.String())
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("session cookie must be same-site strict")
	}
	if userID, ok := tokens.Verify(cookie.Value); !ok || userID == "" {
		t.Fatalf("cookie does not carry a valid token")
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	e := echo.New()
	users := newStubUserService()
	h := NewAuthHandler(users, service.NewTokenService("secret"), false)

	if _, err := users.Create(context.Background(), "Alice", "alice@x.com", "password123"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"name":"Alice","email":"alice@x.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	e := echo.New()
	users := newStubUserService()
	h := NewAuthHandler(users, service.NewTokenService("secret"), false)

	if _, err := users.Create(context.Background(), "Bob", "bob@x.com", "password123"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/signin",
		strings.NewReader(`{"email":"bob@x.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signin(c); err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sessionCookie(rec) == nil {
		t.Fatalf("expected session cookie")
	}
}

func TestAuthHandler_Signin_BadCredentials(t *testing.T) {
	e := echo.New()
	users := newStubUserService()
	h := NewAuthHandler(users, service.NewTokenService("secret"), false)

	if _, err := users.Create(context.Background(), "Bob", "bob@x.com", "password123"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// Wrong password and unknown email must produce the same response.
	for _, body := range []string{
		`{"email":"bob@x.com","password":"wrongpass"}`,
		`{"email":"ghost@x.com","password":"password123"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Signin(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Signout_ClearsCookie(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(newStubUserService(), service.NewTokenService("secret"), false)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signout(c); err != nil {
		t.Fatalf("signout failed: %v", err)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("expected expired cookie in response")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	users := newStubUserService()
	h := NewAuthHandler(users, service.NewTokenService("secret"), false)

	created, err := users.Create(context.Background(), "Carol", "carol@x.com", "password123")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, created.ID)

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), created.ID) {
		t.Fatalf("expected user in body, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_DeletedAccount(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(newStubUserService(), service.NewTokenService("secret"), false)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "user_gone")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %v", err)
	}
}
