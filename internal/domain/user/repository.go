package user

import "context"

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (Account, error)
	GetByUsername(ctx context.Context, username string, role Role) (Account, error)
	// Upsert creates the account or replaces its password and name when the
	// username already exists.
	Upsert(ctx context.Context, account Account) (Account, error)
}
