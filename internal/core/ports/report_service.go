package ports

import (
	"context"
	"time"
)

// SummaryInput carries the parameters for the reports endpoint.
type SummaryInput struct {
	Owner string
	From  time.Time
	To    time.Time
}

// SummaryResult holds the owner's totals over the requested range.
type SummaryResult struct {
	TotalIncome   float64
	TotalExpenses float64
	Net           float64
	Breakdown     []CategoryTotal
}

// ReportService computes aggregate views over a single owner's records.
type ReportService interface {
	Summary(ctx context.Context, input SummaryInput) (*SummaryResult, error)
}
