package memory

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

type accountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) user.AccountRepository {
	return &accountRepository{store: store}
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (user.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return user.Account{}, user.ErrAccountNotFound
	}
	return account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string, role user.Role) (user.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if account.Username == username && account.Role == role {
			return account, nil
		}
	}
	return user.Account{}, user.ErrAccountNotFound
}

func (r *accountRepository) Upsert(ctx context.Context, account user.Account) (user.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.accounts {
		if existing.Username == account.Username {
			account.ID = id
			account.CreatedAt = existing.CreatedAt
			break
		}
	}
	if account.ID == "" {
		account.ID = newID()
	}
	stamp(&account.CreatedAt, &account.UpdatedAt)
	r.store.accounts[account.ID] = account
	return account, nil
}
