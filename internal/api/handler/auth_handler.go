package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/api/metrics"
	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

// AuthHandler handles signup, signin, signout, and the current-user
// endpoints. Session tokens travel only in the HTTP-only cookie; they are
// never part of a response body.
type AuthHandler struct {
	users        ports.UserService
	tokens       ports.TokenService
	secureCookie bool
}

func NewAuthHandler(users ports.UserService, tokens ports.TokenService, secureCookie bool) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, secureCookie: secureCookie}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}

// Signup creates a new account and opens a session.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Create(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case err == domain.ErrUserExists:
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		default:
			metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	setSessionCookie(c, token, h.secureCookie)

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, userResponse{Message: "User created successfully", User: user})
}

// Signin authenticates an email/password pair and opens a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if user == nil {
		// Same response for unknown email and wrong password.
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	setSessionCookie(c, token, h.secureCookie)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Signout clears the session cookie. Always succeeds, signed in or not.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	clearSessionCookie(c, h.secureCookie)
	return c.JSON(http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// Me returns the authenticated user's profile.
//
// @Summary      Get the current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		// Valid token for a deleted account.
		return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}
