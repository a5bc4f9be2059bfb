package special

import "context"

// Repository defines all database operations for specials.
type Repository interface {
	List(ctx context.Context) ([]*Special, error)
	Create(ctx context.Context, sp *Special) error
	Update(ctx context.Context, id string, patch map[string]any) (*Special, error)

	// DeactivateByName soft-deletes every special whose name contains
	// the given substring (case-insensitive) and returns the affected
	// rows.
	DeactivateByName(ctx context.Context, nameSub string) ([]*Special, error)
}
