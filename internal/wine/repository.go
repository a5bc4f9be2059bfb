package wine

import "context"

// Repository defines all database operations for wines.
// Service depends ONLY on this interface.
type Repository interface {
	// List returns every wine ordered by name ascending.
	List(ctx context.Context) ([]*Wine, error)

	// Create inserts a wine and fills in its store-assigned id and
	// timestamps.
	Create(ctx context.Context, w *Wine) error

	// Update applies a partial patch to one wine. Patch keys are column
	// names forwarded verbatim from the request body.
	Update(ctx context.Context, id string, patch map[string]any) (*Wine, error)

	Delete(ctx context.Context, id string) error

	// SetEightySixed flips is_86d on EVERY wine whose name contains the
	// given substring (case-insensitive) and returns the affected rows.
	SetEightySixed(ctx context.Context, nameSub string, down bool) ([]*Wine, error)
}
