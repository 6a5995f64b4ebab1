package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// uniqueViolation is the SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	created := *account
	err := r.pool.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		account.Email, account.PasswordHash, account.IsAdmin,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, is_admin, created_at
		 FROM accounts
		 WHERE email = $1`,
		email,
	).Scan(&account.ID, &account.Email, &account.PasswordHash, &account.IsAdmin, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, password_hash, is_admin, created_at
		 FROM accounts
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*domain.Account{}
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.IsAdmin, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return accounts, nil
}
