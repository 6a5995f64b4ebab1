package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// ListRecordsFilter carries the query parameters for listing records.
// Owner is always set by the service layer; the repository must conjoin it
// into every statement.
type ListRecordsFilter struct {
	Owner string
	Kind  domain.RecordKind
	From  time.Time // optional: date >= From
	To    time.Time // optional: date <= To
}

// RecordPatch is a partial update. Nil fields are left untouched.
type RecordPatch struct {
	Amount      *float64
	Date        *time.Time
	Category    *string
	Cadence     *string
	Description *string
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// RecordRepository defines persistence operations for financial records.
// Every method that touches existing rows takes the owner alongside the id,
// so an unscoped statement cannot be expressed through this interface.
type RecordRepository interface {
	Create(ctx context.Context, r *domain.Record) (*domain.Record, error)
	// List returns the owner's records of the given kind, date descending,
	// id ascending within a date.
	List(ctx context.Context, filter ListRecordsFilter) ([]*domain.Record, error)
	// Update applies patch to the row matching both id and owner. Returns
	// domain.ErrRecordNotFound when no such pair exists.
	Update(ctx context.Context, id int64, owner string, kind domain.RecordKind, patch RecordPatch) (*domain.Record, error)
	// Delete removes the row matching both id and owner. Returns
	// domain.ErrRecordNotFound when no such pair exists.
	Delete(ctx context.Context, id int64, owner string, kind domain.RecordKind) error

	// Totals sums income and expense amounts for the owner over the
	// inclusive range (zero times mean unbounded).
	Totals(ctx context.Context, owner string, from, to time.Time) (income, expenses float64, err error)
	// ExpenseBreakdown groups the owner's expenses by category, largest
	// total first.
	ExpenseBreakdown(ctx context.Context, owner string, from, to time.Time) ([]CategoryTotal, error)
}
