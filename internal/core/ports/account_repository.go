package ports

import (
	"context"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}
