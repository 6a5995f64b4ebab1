package ports

import (
	"context"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.Account, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// ListAccounts backs the admin listing endpoint.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}
