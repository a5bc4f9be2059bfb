package eightysix

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is the in-memory stand-in used by tests.
type MemoryRepository struct {
	mu    sync.Mutex
	items []*Item

	forceErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(ctx context.Context, itemName, itemType string, itemID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	now := time.Now()
	r.items = append(r.items, &Item{
		ID:        uuid.New().String(),
		ItemName:  itemName,
		ItemType:  itemType,
		ItemID:    itemID,
		Timestamp: now,
		CreatedAt: now,
	})
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	// newest first
	items := make([]*Item, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		cp := *r.items[i]
		items = append(items, &cp)
	}
	return items, nil
}
