package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// CreateRecordInput carries all data needed to create a record. Owner comes
// from the authenticated identity, never from the request body.
type CreateRecordInput struct {
	Owner       string
	Kind        domain.RecordKind
	Amount      float64
	Date        time.Time
	Category    string
	Cadence     string // empty = domain.DefaultCadence
	Description string
}

// ListRecordsInput carries the parameters for the list endpoint.
type ListRecordsInput struct {
	Owner string
	Kind  domain.RecordKind
	From  time.Time
	To    time.Time
}

// UpdateRecordInput is a partial update of a single owned record. Nil fields
// are left as stored.
type UpdateRecordInput struct {
	ID          int64
	Owner       string
	Kind        domain.RecordKind
	Amount      *float64
	Date        *time.Time
	Category    *string
	Cadence     *string
	Description *string
}

// DeleteRecordInput identifies a single owned record.
type DeleteRecordInput struct {
	ID    int64
	Owner string
	Kind  domain.RecordKind
}

// RecordService defines use-case operations for income and expense records.
type RecordService interface {
	Create(ctx context.Context, input CreateRecordInput) (*domain.Record, error)
	List(ctx context.Context, input ListRecordsInput) ([]*domain.Record, error)
	Update(ctx context.Context, input UpdateRecordInput) (*domain.Record, error)
	Delete(ctx context.Context, input DeleteRecordInput) error
}
