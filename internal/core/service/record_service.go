package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// RecordService implements owner-scoped CRUD over financial records. The
// owner on every input comes from the authenticated identity; this service
// never reads it from client data.
type RecordService struct {
	repo   ports.RecordRepository
	logger zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, logger zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, logger: logger}
}

func (s *RecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.Record, error) {
	cadence := input.Cadence
	if cadence == "" {
		cadence = domain.DefaultCadence
	}

	record := &domain.Record{
		Owner:       input.Owner,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Date:        input.Date,
		Category:    input.Category,
		Cadence:     cadence,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", input.Owner).Msg("failed to create record")
		return nil, err
	}

	s.logger.Info().
		Int64("id", created.ID).
		Str("owner", created.Owner).
		Str("kind", string(created.Kind)).
		Msg("record created")

	return created, nil
}

func (s *RecordService) List(ctx context.Context, input ports.ListRecordsInput) ([]*domain.Record, error) {
	return s.repo.List(ctx, ports.ListRecordsFilter{
		Owner: input.Owner,
		Kind:  input.Kind,
		From:  input.From,
		To:    input.To,
	})
}

// Update applies only the fields present in the input. The repository
// conjoins id and owner, so a non-owner sees ErrRecordNotFound rather than
// learning the id exists.
func (s *RecordService) Update(ctx context.Context, input ports.UpdateRecordInput) (*domain.Record, error) {
	patch := ports.RecordPatch{
		Amount:      input.Amount,
		Date:        input.Date,
		Category:    input.Category,
		Cadence:     input.Cadence,
		Description: input.Description,
	}

	updated, err := s.repo.Update(ctx, input.ID, input.Owner, input.Kind, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("id", updated.ID).
		Str("owner", updated.Owner).
		Msg("record updated")

	return updated, nil
}

func (s *RecordService) Delete(ctx context.Context, input ports.DeleteRecordInput) error {
	if err := s.repo.Delete(ctx, input.ID, input.Owner, input.Kind); err != nil {
		return err
	}

	s.logger.Info().
		Int64("id", input.ID).
		Str("owner", input.Owner).
		Msg("record deleted")

	return nil
}
