package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dateLayout is the wire format for calendar dates (query params and bodies).
const dateLayout = "2006-01-02"

// --- Request / Response types ---

// createRecordRequest deliberately has no owner field: the owner is always
// the authenticated identity, whatever the body says.
type createRecordRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category"    validate:"required,max=100"`
	Cadence     string  `json:"cadence"     validate:"omitempty,oneof=once weekly monthly yearly"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

// updateRecordRequest is a partial update; absent fields stay as stored.
type updateRecordRequest struct {
	Amount      *float64 `json:"amount"      validate:"omitempty,gt=0"`
	Date        *string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Category    *string  `json:"category"    validate:"omitempty,min=1,max=100"`
	Cadence     *string  `json:"cadence"     validate:"omitempty,oneof=once weekly monthly yearly"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

// Response-only types owned by the transport layer, so the JSON contract is
// not coupled to internal service changes.

type recordResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Cadence     string    `json:"cadence"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type listRecordsResponse struct {
	Data []recordResponse `json:"data"`
}
