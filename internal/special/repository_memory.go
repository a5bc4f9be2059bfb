package special

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

// MemoryRepository is the in-memory stand-in used by tests.
type MemoryRepository struct {
	mu       sync.Mutex
	specials map[string]*Special

	forceErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{specials: make(map[string]*Special)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Special, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	specials := make([]*Special, 0, len(r.specials))
	for _, sp := range r.specials {
		cp := *sp
		specials = append(specials, &cp)
	}
	sort.Slice(specials, func(i, j int) bool {
		return strings.ToLower(specials[i].Name) < strings.ToLower(specials[j].Name)
	})
	return specials, nil
}

func (r *MemoryRepository) Create(ctx context.Context, sp *Special) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	sp.ID = uuid.New().String()
	sp.CreatedAt = time.Now()
	sp.UpdatedAt = sp.CreatedAt

	cp := *sp
	r.specials[sp.ID] = &cp
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch map[string]any) (*Special, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	sp, ok := r.specials[id]
	if !ok {
		return nil, &store.Error{Message: "special not found"}
	}
	if err := applySpecialPatch(sp, patch); err != nil {
		return nil, err
	}
	sp.UpdatedAt = time.Now()

	cp := *sp
	return &cp, nil
}

func (r *MemoryRepository) DeactivateByName(ctx context.Context, nameSub string) ([]*Special, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	matched := make([]*Special, 0)
	for _, sp := range r.specials {
		if strings.Contains(strings.ToLower(sp.Name), strings.ToLower(nameSub)) {
			sp.IsActive = false
			sp.UpdatedAt = time.Now()
			cp := *sp
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
	})
	return matched, nil
}

func applySpecialPatch(sp *Special, patch map[string]any) error {
	for col, val := range patch {
		switch col {
		case "name":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			sp.Name = s
		case "description":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			sp.Description = &s
		case "price":
			f, ok := val.(float64)
			if !ok {
				return columnTypeErr(col)
			}
			sp.Price = &f
		case "type":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			sp.Type = &s
		case "is_active":
			b, ok := val.(bool)
			if !ok {
				return columnTypeErr(col)
			}
			sp.IsActive = b
		default:
			return &store.Error{
				Message: fmt.Sprintf("column %q of relation \"specials\" does not exist", col),
			}
		}
	}
	return nil
}

func columnTypeErr(col string) error {
	return &store.Error{Message: fmt.Sprintf("invalid input for column %q", col)}
}
