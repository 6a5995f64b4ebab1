package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements bootstrap the tables on startup. Idempotent; not a
// migration system.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            bigserial PRIMARY KEY,
		email         text      NOT NULL UNIQUE,
		password_hash text      NOT NULL,
		is_admin      boolean   NOT NULL DEFAULT false,
		created_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS records (
		id          bigserial PRIMARY KEY,
		owner_email text      NOT NULL REFERENCES accounts (email),
		kind        text      NOT NULL CHECK (kind IN ('income', 'expense')),
		amount      numeric(14, 2) NOT NULL CHECK (amount > 0),
		date        date      NOT NULL,
		category    text      NOT NULL,
		cadence     text      NOT NULL DEFAULT 'monthly',
		description text      NOT NULL DEFAULT '',
		created_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS records_owner_kind_date_idx
		ON records (owner_email, kind, date DESC, id ASC)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
