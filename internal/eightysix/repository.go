package eightysix

import "context"

// Repository is the append-only 86 log. There is deliberately no
// update or delete.
type Repository interface {
	// Append records one 86 event. itemID references the first row the
	// 86 matched, nil when nothing matched.
	Append(ctx context.Context, itemName, itemType string, itemID *string) error

	// List returns the log newest-first.
	List(ctx context.Context) ([]*Item, error)
}
