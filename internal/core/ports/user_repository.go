package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// UserUpdate carries the profile fields a user may change. Empty fields are
// left untouched. ID, password hash and join date are deliberately absent.
type UserUpdate struct {
	Name          string
	Email         string
	FavoriteStyle string
	Level         string
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail looks up a user by normalized email.
	// Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID looks up a user by ID. A malformed ID behaves like a missing
	// user and yields domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// Update applies the non-empty fields of update and returns the fresh
	// user. Returns domain.ErrUserExists when the new email belongs to a
	// different account.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)

	// Delete removes the user, reporting whether a record was deleted.
	Delete(ctx context.Context, id string) (bool, error)

	// SetPasswordHash replaces the stored password hash.
	SetPasswordHash(ctx context.Context, id, hash string) (bool, error)

	// IncrementTotalRoasts adjusts the display counter by delta (may be
	// negative). Best-effort: callers treat failures as non-fatal.
	IncrementTotalRoasts(ctx context.Context, id string, delta int) error
}
