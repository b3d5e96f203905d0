package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) user.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// GetByID implements user.AccountRepository.
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, name, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var account user.Account
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Username,
		&account.Name,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Account{}, user.ErrAccountNotFound
		}
		return user.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

// GetByUsername implements user.AccountRepository.
func (r *accountRepositoryImpl) GetByUsername(ctx context.Context, username string, role user.Role) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, name, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1 AND role = $2
	`

	var account user.Account
	err := q.QueryRow(ctx, query, username, role).Scan(
		&account.ID,
		&account.Username,
		&account.Name,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Account{}, user.ErrAccountNotFound
		}
		return user.Account{}, fmt.Errorf("failed to get account by username: %w", err)
	}
	return account, nil
}

// Upsert implements user.AccountRepository.
func (r *accountRepositoryImpl) Upsert(ctx context.Context, account user.Account) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.Account{}, fmt.Errorf("failed to generate account id: %w", err)
	}

	query := `
		INSERT INTO users (id, username, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE
		SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, role = EXCLUDED.role, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		id.String(),
		account.Username,
		account.Name,
		account.PasswordHash,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return user.Account{}, fmt.Errorf("failed to upsert account: %w", err)
	}
	return account, nil
}
