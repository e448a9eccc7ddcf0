package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService implements account management over a UserRepository.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new account with a bcrypt-hashed password and the
// default profile fields. The returned user carries no password hash.
func (s *UserService) Create(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		JoinDate:      time.Now().UTC(),
		TotalRoasts:   0,
		FavoriteStyle: domain.DefaultFavoriteStyle,
		Level:         domain.DefaultLevel,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return sanitize(created), nil
}

// Authenticate checks an email/password pair. Unknown email and wrong
// password both return (nil, nil) so callers cannot probe for accounts.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return sanitize(user), nil
}

// GetByID returns (nil, nil) for malformed or unknown IDs.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, nil
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sanitize(user), nil
}

// Update applies the allowed profile fields. Email and name are re-validated
// and normalized the same way Create normalizes them; the repository enforces
// email uniqueness excluding the user itself.
func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	if id == "" {
		return nil, nil
	}

	if update.Email != "" {
		update.Email = strings.ToLower(strings.TrimSpace(update.Email))
		if !emailPattern.MatchString(update.Email) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
		}
	}
	if update.Name != "" {
		update.Name = strings.TrimSpace(update.Name)
		if update.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
	}

	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sanitize(user), nil
}

// Delete removes the account. Malformed or unknown IDs report (false, nil).
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	return s.repo.Delete(ctx, id)
}

// UpdatePassword verifies the current password before storing a new hash.
func (s *UserService) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) (bool, error) {
	if id == "" {
		return false, nil
	}
	if len(newPassword) < minPasswordLength {
		return false, fmt.Errorf("%w: new password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return false, err
	}
	return s.repo.SetPasswordHash(ctx, id, string(hash))
}

// sanitize clears the password hash before a user leaves the service layer.
func sanitize(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
