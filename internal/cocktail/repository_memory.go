package cocktail

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
	mu        sync.Mutex
	cocktails map[string]*Cocktail

	forceErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cocktails: make(map[string]*Cocktail)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Cocktail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	cocktails := make([]*Cocktail, 0, len(r.cocktails))
	for _, ck := range r.cocktails {
		cp := *ck
		cocktails = append(cocktails, &cp)
	}
	sort.Slice(cocktails, func(i, j int) bool {
		return strings.ToLower(cocktails[i].Name) < strings.ToLower(cocktails[j].Name)
	})
	return cocktails, nil
}

func (r *MemoryRepository) Create(ctx context.Context, ck *Cocktail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	ck.ID = uuid.New().String()
	ck.CreatedAt = time.Now()
	ck.UpdatedAt = ck.CreatedAt

	cp := *ck
	r.cocktails[ck.ID] = &cp
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch map[string]any) (*Cocktail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	ck, ok := r.cocktails[id]
	if !ok {
		return nil, &store.Error{Message: "cocktail not found"}
	}
	if err := applyCocktailPatch(ck, patch); err != nil {
		return nil, err
	}
	ck.UpdatedAt = time.Now()

	cp := *ck
	return &cp, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	delete(r.cocktails, id)
	return nil
}

func (r *MemoryRepository) SetEightySixed(ctx context.Context, nameSub string, down bool) ([]*Cocktail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	matched := make([]*Cocktail, 0)
	for _, ck := range r.cocktails {
		if strings.Contains(strings.ToLower(ck.Name), strings.ToLower(nameSub)) {
			ck.Is86d = down
			ck.UpdatedAt = time.Now()
			cp := *ck
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
	})
	return matched, nil
}

func applyCocktailPatch(ck *Cocktail, patch map[string]any) error {
	for col, val := range patch {
		switch col {
		case "name":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			ck.Name = s
		case "ingredients":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			ck.Ingredients = s
		case "recipe":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			ck.Recipe = &s
		case "price":
			f, ok := val.(float64)
			if !ok {
				return columnTypeErr(col)
			}
			ck.Price = &f
		case "type":
			s, ok := val.(string)
			if !ok {
				return columnTypeErr(col)
			}
			ck.Type = &s
		case "is_signature":
			b, ok := val.(bool)
			if !ok {
				return columnTypeErr(col)
			}
			ck.IsSignature = b
		case "is_86d":
			b, ok := val.(bool)
			if !ok {
				return columnTypeErr(col)
			}
			ck.Is86d = b
		default:
			return &store.Error{
				Message: fmt.Sprintf("column %q of relation \"cocktails\" does not exist", col),
			}
		}
	}
	return nil
}

func columnTypeErr(col string) error {
	return &store.Error{Message: fmt.Sprintf("invalid input for column %q", col)}
}
