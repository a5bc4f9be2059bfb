package cocktail

import "context"

// Repository defines all database operations for cocktails.
type Repository interface {
	List(ctx context.Context) ([]*Cocktail, error)
	Create(ctx context.Context, ck *Cocktail) error
	Update(ctx context.Context, id string, patch map[string]any) (*Cocktail, error)
	Delete(ctx context.Context, id string) error

	// SetEightySixed flips is_86d on every cocktail whose name contains
	// the given substring (case-insensitive) and returns the affected
	// rows.
	SetEightySixed(ctx context.Context, nameSub string, down bool) ([]*Cocktail, error)
}
