package domain

import (
	"errors"
	"time"
)

// RecordKind distinguishes income rows from expense rows.
type RecordKind string

const (
	KindIncome  RecordKind = "income"
	KindExpense RecordKind = "expense"
)

// Recurrence cadences a record may carry. Informational only; nothing in the
// core schedules anything off them.
const (
	CadenceOnce    = "once"
	CadenceWeekly  = "weekly"
	CadenceMonthly = "monthly"
	CadenceYearly  = "yearly"
)

// DefaultCadence is applied when a record is created without one.
const DefaultCadence = CadenceMonthly

var validCadences = map[string]struct{}{
	CadenceOnce:    {},
	CadenceWeekly:  {},
	CadenceMonthly: {},
	CadenceYearly:  {},
}

// ValidCadence reports whether s is a known recurrence cadence.
func ValidCadence(s string) bool {
	_, ok := validCadences[s]
	return ok
}

var ErrRecordNotFound = errors.New("record not found")

// Record is a single income or expense row. Owner is the email of the
// account that created it; every query against records conjoins it.
type Record struct {
	ID          int64      `json:"id"`
	Owner       string     `json:"owner"`
	Kind        RecordKind `json:"kind"`
	Amount      float64    `json:"amount"`
	Date        time.Time  `json:"date"`
	Category    string     `json:"category"`
	Cadence     string     `json:"cadence"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
