package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRecordRepo struct {
	records   map[int64]*domain.Record
	nextID    int64
	createErr error // if set, Create returns this error
}

func newStubRecordRepo() *stubRecordRepo {
	return &stubRecordRepo{records: make(map[int64]*domain.Record)}
}

func (r *stubRecordRepo) Create(_ context.Context, record *domain.Record) (*domain.Record, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *record
	clone.ID = r.nextID
	r.records[clone.ID] = &clone
	out := clone
	return &out, nil
}

// List mirrors the real repository: owner and kind conjoined, inclusive
// bounds, date descending then id ascending.
func (r *stubRecordRepo) List(_ context.Context, f ports.ListRecordsFilter) ([]*domain.Record, error) {
	var matched []*domain.Record
	for _, rec := range r.records {
		if rec.Owner != f.Owner || rec.Kind != f.Kind {
			continue
		}
		if !f.From.IsZero() && rec.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && rec.Date.After(f.To) {
			continue
		}
		clone := *rec
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func (r *stubRecordRepo) Update(_ context.Context, id int64, owner string, kind domain.RecordKind, patch ports.RecordPatch) (*domain.Record, error) {
	rec, ok := r.records[id]
	if !ok || rec.Owner != owner || rec.Kind != kind {
		return nil, domain.ErrRecordNotFound
	}
	if patch.Amount != nil {
		rec.Amount = *patch.Amount
	}
	if patch.Date != nil {
		rec.Date = *patch.Date
	}
	if patch.Category != nil {
		rec.Category = *patch.Category
	}
	if patch.Cadence != nil {
		rec.Cadence = *patch.Cadence
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	clone := *rec
	return &clone, nil
}

func (r *stubRecordRepo) Delete(_ context.Context, id int64, owner string, kind domain.RecordKind) error {
	rec, ok := r.records[id]
	if !ok || rec.Owner != owner || rec.Kind != kind {
		return domain.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *stubRecordRepo) Totals(_ context.Context, owner string, from, to time.Time) (float64, float64, error) {
	var income, expenses float64
	for _, rec := range r.records {
		if rec.Owner != owner {
			continue
		}
		if !from.IsZero() && rec.Date.Before(from) {
			continue
		}
		if !to.IsZero() && rec.Date.After(to) {
			continue
		}
		if rec.Kind == domain.KindIncome {
			income += rec.Amount
		} else {
			expenses += rec.Amount
		}
	}
	return income, expenses, nil
}

func (r *stubRecordRepo) ExpenseBreakdown(_ context.Context, owner string, from, to time.Time) ([]ports.CategoryTotal, error) {
	totals := map[string]*ports.CategoryTotal{}
	for _, rec := range r.records {
		if rec.Owner != owner || rec.Kind != domain.KindExpense {
			continue
		}
		if !from.IsZero() && rec.Date.Before(from) {
			continue
		}
		if !to.IsZero() && rec.Date.After(to) {
			continue
		}
		ct, ok := totals[rec.Category]
		if !ok {
			ct = &ports.CategoryTotal{Category: rec.Category}
			totals[rec.Category] = ct
		}
		ct.Total += rec.Amount
		ct.Count++
	}
	out := make([]ports.CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRecordService_Create_StampsOwnerAndDefaults(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateRecordInput{
		Owner:    "alice@example.com",
		Kind:     domain.KindExpense,
		Amount:   42.50,
		Date:     day("2025-03-10"),
		Category: "groceries",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Owner != "alice@example.com" {
		t.Fatalf("expected owner alice@example.com, got %s", created.Owner)
	}
	if created.Cadence != domain.CadenceMonthly {
		t.Fatalf("expected default cadence monthly, got %s", created.Cadence)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestRecordService_Create_KeepsExplicitCadence(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateRecordInput{
		Owner:    "alice@example.com",
		Kind:     domain.KindIncome,
		Amount:   1000,
		Date:     day("2025-03-01"),
		Category: "salary",
		Cadence:  domain.CadenceYearly,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Cadence != domain.CadenceYearly {
		t.Fatalf("expected cadence yearly, got %s", created.Cadence)
	}
}

func TestRecordService_Create_RepoError(t *testing.T) {
	repo := newStubRecordRepo()
	repo.createErr = errors.New("boom")
	svc := NewRecordService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateRecordInput{
		Owner:    "alice@example.com",
		Kind:     domain.KindExpense,
		Amount:   1,
		Date:     day("2025-01-01"),
		Category: "misc",
	}); err == nil {
		t.Fatalf("expected error from repo")
	}
}

func TestRecordService_List_ScopedAndOrdered(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())
	ctx := context.Background()

	seed := []ports.CreateRecordInput{
		{Owner: "alice@example.com", Kind: domain.KindExpense, Amount: 10, Date: day("2025-01-05"), Category: "food"},
		{Owner: "alice@example.com", Kind: domain.KindExpense, Amount: 20, Date: day("2025-01-20"), Category: "rent"},
		{Owner: "alice@example.com", Kind: domain.KindExpense, Amount: 30, Date: day("2025-01-20"), Category: "food"},
		{Owner: "bob@example.com", Kind: domain.KindExpense, Amount: 99, Date: day("2025-01-10"), Category: "food"},
		{Owner: "alice@example.com", Kind: domain.KindIncome, Amount: 500, Date: day("2025-01-15"), Category: "salary"},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	records, err := svc.List(ctx, ports.ListRecordsInput{
		Owner: "alice@example.com",
		Kind:  domain.KindExpense,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for _, r := range records {
		if r.Owner != "alice@example.com" {
			t.Fatalf("leaked record owned by %s", r.Owner)
		}
	}
	// Date descending, insertion order within the same date.
	if !records[0].Date.Equal(day("2025-01-20")) || records[0].Amount != 20 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if !records[1].Date.Equal(day("2025-01-20")) || records[1].Amount != 30 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	if !records[2].Date.Equal(day("2025-01-05")) {
		t.Fatalf("unexpected third record: %+v", records[2])
	}
}

func TestRecordService_List_DateRangeInclusive(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())
	ctx := context.Background()

	dates := []string{"2025-01-01", "2025-01-15", "2025-01-31", "2025-02-01"}
	for _, d := range dates {
		if _, err := svc.Create(ctx, ports.CreateRecordInput{
			Owner: "alice@example.com", Kind: domain.KindExpense, Amount: 1, Date: day(d), Category: "misc",
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	records, err := svc.List(ctx, ports.ListRecordsInput{
		Owner: "alice@example.com",
		Kind:  domain.KindExpense,
		From:  day("2025-01-01"),
		To:    day("2025-01-31"),
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records in inclusive range, got %d", len(records))
	}
}

// Guessing another user's id must yield not-found and leave the row intact.
func TestRecordService_Update_OtherOwnerNotFound(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateRecordInput{
		Owner: "bob@example.com", Kind: domain.KindExpense, Amount: 55, Date: day("2025-02-02"), Category: "rent",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	amount := 1.0
	_, err = svc.Update(ctx, ports.UpdateRecordInput{
		ID:     created.ID,
		Owner:  "alice@example.com",
		Kind:   domain.KindExpense,
		Amount: &amount,
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if repo.records[created.ID].Amount != 55 {
		t.Fatalf("record mutated by non-owner")
	}
}

func TestRecordService_Update_AppliesOnlyPresentFields(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateRecordInput{
		Owner: "alice@example.com", Kind: domain.KindExpense, Amount: 55, Date: day("2025-02-02"),
		Category: "rent", Description: "february",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	amount := 60.0
	updated, err := svc.Update(ctx, ports.UpdateRecordInput{
		ID:     created.ID,
		Owner:  "alice@example.com",
		Kind:   domain.KindExpense,
		Amount: &amount,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Amount != 60 {
		t.Fatalf("expected amount 60, got %v", updated.Amount)
	}
	if updated.Category != "rent" || updated.Description != "february" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestRecordService_Delete_OtherOwnerNotFound(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateRecordInput{
		Owner: "bob@example.com", Kind: domain.KindIncome, Amount: 10, Date: day("2025-02-02"), Category: "gift",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	err = svc.Delete(ctx, ports.DeleteRecordInput{ID: created.ID, Owner: "alice@example.com", Kind: domain.KindIncome})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if _, ok := repo.records[created.ID]; !ok {
		t.Fatalf("record deleted by non-owner")
	}
}

// Deleting twice is not-found the second time, never a server error.
func TestRecordService_Delete_Idempotent(t *testing.T) {
	repo := newStubRecordRepo()
	svc := NewRecordService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateRecordInput{
		Owner: "alice@example.com", Kind: domain.KindIncome, Amount: 10, Date: day("2025-02-02"), Category: "gift",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	input := ports.DeleteRecordInput{ID: created.ID, Owner: "alice@example.com", Kind: domain.KindIncome}
	if err := svc.Delete(ctx, input); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(ctx, input); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on second delete, got %v", err)
	}
}
