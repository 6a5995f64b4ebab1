package handler

import (
	"github.com/fintrack/finance-tracker/internal/core/domain"
)

// --- Service result → HTTP response ---

func toRecordResponse(r *domain.Record) recordResponse {
	return recordResponse{
		ID:          r.ID,
		Kind:        string(r.Kind),
		Amount:      r.Amount,
		Date:        r.Date.UTC().Format(dateLayout),
		Category:    r.Category,
		Cadence:     r.Cadence,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func toListResponse(records []*domain.Record) listRecordsResponse {
	data := make([]recordResponse, len(records))
	for i, r := range records {
		data[i] = toRecordResponse(r)
	}
	return listRecordsResponse{Data: data}
}
