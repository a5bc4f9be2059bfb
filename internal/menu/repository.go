package menu

import "context"

// Repository defines all database operations for menus.
type Repository interface {
	Create(ctx context.Context, m *Menu) error

	// List returns menus newest-first.
	List(ctx context.Context) ([]*Menu, error)
}
