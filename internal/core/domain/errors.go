package domain

import "errors"

var (
	// ErrValidation marks malformed or missing input. Wrap with %w to add detail.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoastNotFound      = errors.New("roast not found")
	ErrPhotosNotFound     = errors.New("no photos found")
	ErrInvalidReaction    = errors.New("invalid reaction type")
	ErrForbidden          = errors.New("access forbidden")
)
