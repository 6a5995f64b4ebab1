package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// ReportService computes aggregate totals over a single owner's records.
type ReportService struct {
	repo   ports.RecordRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.RecordRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// Summary returns total income, total expenses, net, and the expense
// breakdown by category (largest total first), all scoped to input.Owner.
func (s *ReportService) Summary(ctx context.Context, input ports.SummaryInput) (*ports.SummaryResult, error) {
	income, expenses, err := s.repo.Totals(ctx, input.Owner, input.From, input.To)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", input.Owner).Msg("failed to compute totals")
		return nil, err
	}

	breakdown, err := s.repo.ExpenseBreakdown(ctx, input.Owner, input.From, input.To)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", input.Owner).Msg("failed to compute breakdown")
		return nil, err
	}

	return &ports.SummaryResult{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Net:           income - expenses,
		Breakdown:     breakdown,
	}, nil
}
