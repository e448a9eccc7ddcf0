package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// SaveRoastInput carries everything needed to persist one roast.
type SaveRoastInput struct {
	UserID    string
	Content   string
	Style     string
	Language  string
	ImageURL  string
	UserInput string
}

// RoastService implements roast history operations.
type RoastService interface {
	Save(ctx context.Context, input SaveRoastInput) (*domain.Roast, error)
	GetByID(ctx context.Context, id string) (*domain.Roast, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Roast, error)
	ListAll(ctx context.Context, limit int) ([]domain.Roast, error)
	React(ctx context.Context, id string, reaction domain.ReactionType) error
	Rate(ctx context.Context, id string, rating int) error
	Delete(ctx context.Context, id, userID string) error
}
