package wine

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
	mu    sync.Mutex
	wines map[string]*Wine

	// forceErr, when set, is returned by every operation. Lets tests
	// exercise the store-error pass-through path.
	forceErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{wines: make(map[string]*Wine)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Wine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	wines := make([]*Wine, 0, len(r.wines))
	for _, w := range r.wines {
		cp := *w
		wines = append(wines, &cp)
	}
	sort.Slice(wines, func(i, j int) bool {
		return strings.ToLower(wines[i].Name) < strings.ToLower(wines[j].Name)
	})
	return wines, nil
}

func (r *MemoryRepository) Create(ctx context.Context, w *Wine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	w.ID = uuid.New().String()
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt

	cp := *w
	r.wines[w.ID] = &cp
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch map[string]any) (*Wine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	w, ok := r.wines[id]
	if !ok {
		return nil, &store.Error{Message: "wine not found"}
	}
	if err := applyWinePatch(w, patch); err != nil {
		return nil, err
	}
	w.UpdatedAt = time.Now()

	cp := *w
	return &cp, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	delete(r.wines, id)
	return nil
}

func (r *MemoryRepository) SetEightySixed(ctx context.Context, nameSub string, down bool) ([]*Wine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	matched := make([]*Wine, 0)
	for _, w := range r.wines {
		if strings.Contains(strings.ToLower(w.Name), strings.ToLower(nameSub)) {
			w.Is86d = down
			w.UpdatedAt = time.Now()
			cp := *w
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
	})
	return matched, nil
}

// applyWinePatch mirrors the database's column semantics: unknown
// columns and mismatched types come back as store errors.
func applyWinePatch(w *Wine, patch map[string]any) error {
	for col, val := range patch {
		switch col {
		case "name":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			w.Name = s
		case "type":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			w.Type = s
		case "vintage":
			f, ok := val.(float64)
			if !ok {
				return columnTypeErr(col)
			}
			v := int(f)
			w.Vintage = &v
		case "region":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			w.Region = &s
		case "price":
			f, ok := val.(float64)
			if !ok {
				return columnTypeErr(col)
			}
			w.Price = &f
		case "description":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			w.Description = &s
		case "is_86d":
			b, ok := val.(bool)
			if !ok {
				return columnTypeErr(col)
			}
			w.Is86d = b
		default:
			return &store.Error{
				Message: fmt.Sprintf("column %q of relation \"wines\" does not exist", col),
			}
		}
	}
	return nil
}

func columnTypeErr(col string) error {
	return &store.Error{Message: fmt.Sprintf("invalid input for column %q", col)}
}
