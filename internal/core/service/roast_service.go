package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

// RoastService implements roast history operations.
type RoastService struct {
	roasts ports.RoastRepository
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewRoastService(roasts ports.RoastRepository, users ports.UserRepository, log zerolog.Logger) *RoastService {
	return &RoastService{roasts: roasts, users: users, log: log}
}

// Save persists a roast and bumps the owner's totalRoasts counter. The two
// writes are independent: a crash between them leaves the display counter
// under-counted, which is accepted for a cosmetic statistic.
func (s *RoastService) Save(ctx context.Context, input ports.SaveRoastInput) (*domain.Roast, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrValidation)
	}
	if input.Content == "" || input.Style == "" || input.Language == "" {
		return nil, fmt.Errorf("%w: content, style, and language are required", domain.ErrValidation)
	}

	roast := &domain.Roast{
		UserID:    input.UserID,
		Content:   input.Content,
		Style:     input.Style,
		Language:  input.Language,
		ImageURL:  input.ImageURL,
		UserInput: input.UserInput,
		Rating:    0,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.roasts.Insert(ctx, roast)
	if err != nil {
		return nil, err
	}

	if err := s.users.IncrementTotalRoasts(ctx, input.UserID, 1); err != nil {
		s.log.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to increment roast counter")
	}
	return created, nil
}

func (s *RoastService) GetByID(ctx context.Context, id string) (*domain.Roast, error) {
	return s.roasts.FindByID(ctx, id)
}

func (s *RoastService) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Roast, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = 10
	}
	return s.roasts.ListByUser(ctx, userID, limit)
}

func (s *RoastService) ListAll(ctx context.Context, limit int) ([]domain.Roast, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.roasts.ListAll(ctx, limit)
}

// React bumps one of the named reaction counters. Unknown reaction types fail
// before any write happens.
func (s *RoastService) React(ctx context.Context, id string, reaction domain.ReactionType) error {
	if !domain.ValidReaction(reaction) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidReaction, reaction)
	}
	matched, err := s.roasts.IncrementReaction(ctx, id, reaction)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrRoastNotFound
	}
	return nil
}

// Rate sets the roast's rating, constrained to [1,5].
func (s *RoastService) Rate(ctx context.Context, id string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	matched, err := s.roasts.UpdateRating(ctx, id, rating)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrRoastNotFound
	}
	return nil
}

// Delete removes a roast only when it belongs to userID, then decrements the
// owner's counter.
func (s *RoastService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.roasts.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRoastNotFound
	}

	if err := s.users.IncrementTotalRoasts(ctx, userID, -1); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to decrement roast counter")
	}
	return nil
}
