package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

type stubRoastRepo struct {
	roasts map[string]*domain.Roast
	nextID int
}

func newStubRoastRepo() *stubRoastRepo {
	return &stubRoastRepo{roasts: make(map[string]*domain.Roast), nextID: 1}
}

func (r *stubRoastRepo) Insert(_ context.Context, roast *domain.Roast) (*domain.Roast, error) {
	created := *roast
	created.ID = "roast_" + strconv.Itoa(r.nextID)
	r.nextID++
	clone := created
	r.roasts[created.ID] = &clone
	return &created, nil
}

func (r *stubRoastRepo) FindByID(_ context.Context, id string) (*domain.Roast, error) {
	roast, ok := r.roasts[id]
	if !ok {
		return nil, domain.ErrRoastNotFound
	}
	clone := *roast
	return &clone, nil
}

func (r *stubRoastRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.Roast, error) {
	out := []domain.Roast{}
	for _, roast := range r.roasts {
		if roast.UserID == userID && len(out) < limit {
			out = append(out, *roast)
		}
	}
	return out, nil
}

func (r *stubRoastRepo) ListAll(_ context.Context, limit int) ([]domain.Roast, error) {
	out := []domain.Roast{}
	for _, roast := range r.roasts {
		if len(out) < limit {
			out = append(out, *roast)
		}
	}
	return out, nil
}

func (r *stubRoastRepo) IncrementReaction(_ context.Context, id string, reaction domain.ReactionType) (bool, error) {
	roast, ok := r.roasts[id]
	if !ok {
		return false, nil
	}
	switch reaction {
	case domain.ReactionFire:
		roast.Reactions.Fire++
	case domain.ReactionLaugh:
		roast.Reactions.Laugh++
	case domain.ReactionCry:
		roast.Reactions.Cry++
	}
	return true, nil
}

func (r *stubRoastRepo) UpdateRating(_ context.Context, id string, rating int) (bool, error) {
	roast, ok := r.roasts[id]
	if !ok {
		return false, nil
	}
	roast.Rating = rating
	return true, nil
}

func (r *stubRoastRepo) Delete(_ context.Context, id, userID string) (bool, error) {
	roast, ok := r.roasts[id]
	if !ok || roast.UserID != userID {
		return false, nil
	}
	delete(r.roasts, id)
	return true, nil
}

func newRoastFixture(t *testing.T) (*RoastService, *stubRoastRepo, *stubUserRepo, string) {
	t.Helper()
	roastRepo := newStubRoastRepo()
	userRepo := newStubUserRepo()
	svc := NewRoastService(roastRepo, userRepo, zerolog.Nop())

	owner, err := userRepo.Create(context.Background(), &domain.User{Email: "owner@x.com"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return svc, roastRepo, userRepo, owner.ID
}

func TestRoastService_Save_IncrementsCounter(t *testing.T) {
	svc, _, userRepo, ownerID := newRoastFixture(t)

	roast, err := svc.Save(context.Background(), ports.SaveRoastInput{
		UserID:   ownerID,
		Content:  "ow",
		Style:    "savage",
		Language: "english",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if roast.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if roast.Rating != 0 {
		t.Fatalf("expected initial rating 0, got %d", roast.Rating)
	}
	if roast.Reactions != (domain.Reactions{}) {
		t.Fatalf("expected zeroed reactions, got %+v", roast.Reactions)
	}
	if got := userRepo.users[ownerID].TotalRoasts; got != 1 {
		t.Fatalf("expected totalRoasts 1, got %d", got)
	}
}

func TestRoastService_Save_Validation(t *testing.T) {
	svc, _, _, ownerID := newRoastFixture(t)

	cases := []ports.SaveRoastInput{
		{Content: "x", Style: "savage", Language: "english"},
		{UserID: ownerID, Style: "savage", Language: "english"},
		{UserID: ownerID, Content: "x", Language: "english"},
		{UserID: ownerID, Content: "x", Style: "savage"},
	}
	for _, tc := range cases {
		if _, err := svc.Save(context.Background(), tc); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", tc, err)
		}
	}
}

func TestRoastService_GetByID(t *testing.T) {
	svc, _, _, ownerID := newRoastFixture(t)

	saved, _ := svc.Save(context.Background(), ports.SaveRoastInput{
		UserID: ownerID, Content: "x", Style: "savage", Language: "english",
	})

	got, err := svc.GetByID(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ID != saved.ID || got.Content != "x" {
		t.Fatalf("unexpected roast: %+v", got)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrRoastNotFound) {
		t.Fatalf("expected ErrRoastNotFound, got %v", err)
	}
}

func TestRoastService_ListAll_DefaultLimit(t *testing.T) {
	svc, _, _, ownerID := newRoastFixture(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Save(context.Background(), ports.SaveRoastInput{
			UserID: ownerID, Content: "x", Style: "savage", Language: "english",
		}); err != nil {
			t.Fatalf("seed roast: %v", err)
		}
	}

	all, err := svc.ListAll(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 roasts, got %d", len(all))
	}
}

func TestRoastService_React(t *testing.T) {
	svc, repo, _, ownerID := newRoastFixture(t)

	roast, _ := svc.Save(context.Background(), ports.SaveRoastInput{
		UserID: ownerID, Content: "x", Style: "savage", Language: "english",
	})

	if err := svc.React(context.Background(), roast.ID, domain.ReactionFire); err != nil {
		t.Fatalf("first reaction failed: %v", err)
	}
	if err := svc.React(context.Background(), roast.ID, domain.ReactionFire); err != nil {
		t.Fatalf("second reaction failed: %v", err)
	}

	got := repo.roasts[roast.ID].Reactions
	if got.Fire != 2 || got.Laugh != 0 || got.Cry != 0 {
		t.Fatalf("expected fire=2 laugh=0 cry=0, got %+v", got)
	}
}

func TestRoastService_React_InvalidType(t *testing.T) {
	svc, repo, _, ownerID := newRoastFixture(t)

	roast, _ := svc.Save(context.Background(), ports.SaveRoastInput{
		UserID: ownerID, Content: "x", Style: "savage", Language: "english",
	})

	if err := svc.React(context.Background(), roast.ID, "invalid"); !errors.Is(err, domain.ErrInvalidReaction) {
		t.Fatalf("expected ErrInvalidReaction, got %v", err)
	}
	if got := repo.roasts[roast.ID].Reactions; got != (domain.Reactions{}) {
		t.Fatalf("expected no mutation after invalid reaction, got %+v", got)
	}
}

func TestRoastService_Rate(t *testing.T) {
	svc, repo, _, ownerID := newRoastFixture(t)

	roast, _ := svc.Save(context.Background(), ports.SaveRoastInput{
		UserID: ownerID, Content: "x", Style: "savage", Language: "english",
	})

	for _, bad := range []int{0, -1, 6} {
		if err := svc.Rate(context.Background(), roast.ID, bad); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for rating %d, got %v", bad, err)
		}
	}

	if err := svc.Rate(context.Background(), roast.ID, 4); err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if got := repo.roasts[roast.ID].Rating; got != 4 {
		t.Fatalf("expected rating 4, got %d", got)
	}
}

func TestRoastService_Delete_OwnershipAndCounter(t *testing.T) {
	svc, _, userRepo, ownerID := newRoastFixture(t)

	roast, _ := svc.Save(context.Background(), ports.SaveRoastInput{
		UserID: ownerID, Content: "x", Style: "savage", Language: "english",
	})

	if err := svc.Delete(context.Background(), roast.ID, "someone_else"); !errors.Is(err, domain.ErrRoastNotFound) {
		t.Fatalf("expected ErrRoastNotFound for foreign delete, got %v", err)
	}
	if got := userRepo.users[ownerID].TotalRoasts; got != 1 {
		t.Fatalf("counter should be untouched after failed delete, got %d", got)
	}

	if err := svc.Delete(context.Background(), roast.ID, ownerID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if got := userRepo.users[ownerID].TotalRoasts; got != 0 {
		t.Fatalf("expected counter back to 0, got %d", got)
	}
}
