package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

const recordColumns = `id, owner_email, kind, amount, date, category, cadence, description, created_at`

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var r domain.Record
	err := row.Scan(&r.ID, &r.Owner, &r.Kind, &r.Amount, &r.Date, &r.Category, &r.Cadence, &r.Description, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RecordRepository) Create(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	created, err := scanRecord(r.pool.QueryRow(ctx,
		`INSERT INTO records (owner_email, kind, amount, date, category, cadence, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+recordColumns,
		record.Owner, record.Kind, record.Amount, record.Date, record.Category, record.Cadence, record.Description,
	))
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	return created, nil
}

// List returns the owner's records, date descending with id ascending as the
// tie-break so ordering is stable across identical dates.
func (r *RecordRepository) List(ctx context.Context, filter ports.ListRecordsFilter) ([]*domain.Record, error) {
	args := []any{filter.Owner, filter.Kind}
	query := `SELECT ` + recordColumns + `
		 FROM records
		 WHERE owner_email = $1 AND kind = $2` +
		rangePredicate(&args, filter.From, filter.To) +
		` ORDER BY date DESC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []*domain.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return records, nil
}

// Update applies only the non-nil patch fields. The WHERE clause conjoins
// id, owner, and kind: a request authenticated as another user matches zero
// rows and surfaces as not-found.
func (r *RecordRepository) Update(ctx context.Context, id int64, owner string, kind domain.RecordKind, patch ports.RecordPatch) (*domain.Record, error) {
	set := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.Date != nil {
		addSet("date", *patch.Date)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.Cadence != nil {
		addSet("cadence", *patch.Cadence)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("update record: empty patch")
	}

	args = append(args, id, owner, kind)
	query := fmt.Sprintf(
		`UPDATE records SET %s
		 WHERE id = $%d AND owner_email = $%d AND kind = $%d
		 RETURNING `+recordColumns,
		strings.Join(set, ", "), len(args)-2, len(args)-1, len(args),
	)

	updated, err := scanRecord(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("update record: %w", err)
	}

	return updated, nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int64, owner string, kind domain.RecordKind) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM records
		 WHERE id = $1 AND owner_email = $2 AND kind = $3`,
		id, owner, kind,
	)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// rangePredicate appends optional inclusive date bounds to args and returns
// the SQL fragment to conjoin.
func rangePredicate(args *[]any, from, to time.Time) string {
	var sb strings.Builder
	if !from.IsZero() {
		*args = append(*args, from)
		fmt.Fprintf(&sb, " AND date >= $%d", len(*args))
	}
	if !to.IsZero() {
		*args = append(*args, to)
		fmt.Fprintf(&sb, " AND date <= $%d", len(*args))
	}
	return sb.String()
}

func (r *RecordRepository) Totals(ctx context.Context, owner string, from, to time.Time) (income, expenses float64, err error) {
	args := []any{owner}
	query := `SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'),  0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0)
		 FROM records
		 WHERE owner_email = $1` + rangePredicate(&args, from, to)

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&income, &expenses); err != nil {
		return 0, 0, fmt.Errorf("totals: %w", err)
	}

	return income, expenses, nil
}

func (r *RecordRepository) ExpenseBreakdown(ctx context.Context, owner string, from, to time.Time) ([]ports.CategoryTotal, error) {
	args := []any{owner}
	query := `SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		 FROM records
		 WHERE owner_email = $1 AND kind = 'expense'` + rangePredicate(&args, from, to) + `
		 GROUP BY category
		 ORDER BY SUM(amount) DESC, category ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("expense breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := []ports.CategoryTotal{}
	for rows.Next() {
		var ct ports.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
			return nil, fmt.Errorf("scan breakdown: %w", err)
		}
		breakdown = append(breakdown, ct)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return breakdown, nil
}
