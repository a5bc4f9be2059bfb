package wine

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

func (s *Service) List(ctx context.Context) ([]*Wine, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, w *Wine) error {
	if w.Name == "" || w.Type == "" {
		return store.ValidationError("Name and type are required")
	}

	// New wines always start available.
	w.Is86d = false

	return s.repo.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (*Wine, error) {
	if id == "" {
		return nil, store.ValidationError("Wine ID is required")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return store.ValidationError("Wine ID is required")
	}
	return s.repo.Delete(ctx, id)
}
