package cocktail

import (
	"context"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Cocktail, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, ck *Cocktail) error {
	if ck.Name == "" || ck.Ingredients == "" {
		return store.ValidationError("Name and ingredients are required")
	}

	// New cocktails always start available; is_signature is taken from
	// the request and defaults to false.
	ck.Is86d = false

	return s.repo.Create(ctx, ck)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (*Cocktail, error) {
	if id == "" {
		return nil, store.ValidationError("Cocktail ID is required")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return store.ValidationError("Cocktail ID is required")
	}
	return s.repo.Delete(ctx, id)
}
