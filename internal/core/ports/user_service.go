package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// UserService implements account management on top of UserRepository.
type UserService interface {
	// Create registers a new account. Fails with domain.ErrValidation for
	// malformed input and domain.ErrUserExists for a taken email.
	Create(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate returns the user on a correct email/password pair and
	// (nil, nil) for both unknown email and wrong password. The two failure
	// modes are deliberately indistinguishable.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetByID returns (nil, nil) for malformed or unknown IDs.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Update applies the allowed profile fields after re-validating them.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)

	// Delete reports whether an account was removed. Malformed IDs yield
	// (false, nil).
	Delete(ctx context.Context, id string) (bool, error)

	// UpdatePassword verifies currentPassword before storing a new hash.
	// Returns (false, nil) on a wrong current password or unknown ID and
	// domain.ErrValidation when the new password is too short.
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) (bool, error)
}
