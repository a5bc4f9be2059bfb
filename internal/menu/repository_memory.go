package menu

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is the in-memory stand-in used by tests.
type MemoryRepository struct {
	mu    sync.Mutex
	menus []*Menu

	forceErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, m *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	m.ID = uuid.New().String()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	cp := *m
	r.menus = append(r.menus, &cp)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	menus := make([]*Menu, 0, len(r.menus))
	for i := len(r.menus) - 1; i >= 0; i-- {
		cp := *r.menus[i]
		menus = append(menus, &cp)
	}
	return menus, nil
}
