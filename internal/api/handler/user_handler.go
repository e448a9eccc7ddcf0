package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

// UserHandler handles profile mutations for the authenticated user.
type UserHandler struct {
	users        ports.UserService
	secureCookie bool
}

func NewUserHandler(users ports.UserService, secureCookie bool) *UserHandler {
	return &UserHandler{users: users, secureCookie: secureCookie}
}

type updateProfileRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	FavoriteStyle string `json:"favoriteStyle"`
	Level         string `json:"level"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile applies the allowed profile fields. ID, password and join
// date cannot be changed through this endpoint regardless of payload.
//
// @Summary      Update the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Update(c.Request().Context(), userID, ports.UserUpdate{
		Name:          req.Name,
		Email:         req.Email,
		FavoriteStyle: req.FavoriteStyle,
		Level:         req.Level,
	})
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// UpdatePassword changes the password after verifying the current one.
//
// @Summary      Change the current user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/me/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ok, err := h.users.UpdatePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "current password is incorrect")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// DeleteAccount removes the account and ends the session.
//
// @Summary      Delete the current user's account
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.users.Delete(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	clearSessionCookie(c, h.secureCookie)
	return c.JSON(http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
