package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// RoastRepository defines persistence for roast history.
type RoastRepository interface {
	// Insert stores a new roast and returns it with its assigned ID.
	Insert(ctx context.Context, roast *domain.Roast) (*domain.Roast, error)

	// FindByID returns a roast or domain.ErrRoastNotFound. A malformed ID
	// behaves like a missing roast.
	FindByID(ctx context.Context, id string) (*domain.Roast, error)

	// ListByUser returns the user's roasts newest-first, capped at limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Roast, error)

	// ListAll returns the most recent roasts across all users, capped at limit.
	ListAll(ctx context.Context, limit int) ([]domain.Roast, error)

	// IncrementReaction atomically bumps the named counter by one.
	// Reports whether a roast was matched.
	IncrementReaction(ctx context.Context, id string, reaction domain.ReactionType) (bool, error)

	// UpdateRating sets the rating field. Reports whether a roast was matched.
	UpdateRating(ctx context.Context, id string, rating int) (bool, error)

	// Delete removes the roast only when it belongs to userID. The ownership
	// check is part of the delete filter, not a separate read.
	Delete(ctx context.Context, id, userID string) (bool, error)
}
