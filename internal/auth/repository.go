package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
