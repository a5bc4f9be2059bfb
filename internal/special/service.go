package special

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

func (s *Service) List(ctx context.Context) ([]*Special, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, sp *Special) error {
	if sp.Name == "" {
		return store.ValidationError("Name is required")
	}

	// New specials start active.
	sp.IsActive = true

	return s.repo.Create(ctx, sp)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (*Special, error) {
	if id == "" {
		return nil, store.ValidationError("Special ID is required")
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete is a soft delete: the row stays, is_active goes false.
func (s *Service) Delete(ctx context.Context, id string) (*Special, error) {
	if id == "" {
		return nil, store.ValidationError("Special ID is required")
	}
	return s.repo.Update(ctx, id, map[string]any{"is_active": false})
}
