package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type payPeriodRepository struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payroll.PayPeriodRepository {
	return &payPeriodRepository{db: db}
}

// GetByPayDate implements payroll.PayPeriodRepository.
func (r *payPeriodRepository) GetByPayDate(ctx context.Context, payDate time.Time) (*payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, pay_date, period_start, period_end, status, totals, created_at, updated_at
		FROM pay_periods
		WHERE pay_date = $1
		LIMIT 1
	`

	var p payroll.PayPeriod
	var totalsRaw []byte
	err := q.QueryRow(ctx, query, payDate).Scan(
		&p.ID, &p.PayDate, &p.PeriodStart, &p.PeriodEnd, &p.Status, &totalsRaw, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get pay period: %w", err)
	}
	if len(totalsRaw) > 0 {
		if err := json.Unmarshal(totalsRaw, &p.Totals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pay period totals: %w", err)
		}
	}

	return &p, nil
}

// Upsert implements payroll.PayPeriodRepository.
func (r *payPeriodRepository) Upsert(ctx context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	if period.ID == "" {
		period.ID = uuid.NewString()
	}
	totalsRaw, err := json.Marshal(period.Totals)
	if err != nil {
		return payroll.PayPeriod{}, fmt.Errorf("failed to marshal pay period totals: %w", err)
	}

	query := `
		INSERT INTO pay_periods (id, pay_date, period_start, period_end, status, totals)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (pay_date) DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			status = EXCLUDED.status,
			totals = EXCLUDED.totals,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		period.ID, period.PayDate, period.PeriodStart, period.PeriodEnd, period.Status, totalsRaw,
	).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return payroll.PayPeriod{}, fmt.Errorf("failed to upsert pay period: %w", err)
	}

	return period, nil
}

// List implements payroll.PayPeriodRepository.
func (r *payPeriodRepository) List(ctx context.Context, start, end time.Time) ([]payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, pay_date, period_start, period_end, status, totals, created_at, updated_at
		FROM pay_periods
		WHERE pay_date BETWEEN $1 AND $2
		ORDER BY pay_date DESC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayPeriod
	for rows.Next() {
		var p payroll.PayPeriod
		var totalsRaw []byte
		if err := rows.Scan(&p.ID, &p.PayDate, &p.PeriodStart, &p.PeriodEnd, &p.Status, &totalsRaw, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		if len(totalsRaw) > 0 {
			if err := json.Unmarshal(totalsRaw, &p.Totals); err != nil {
				return nil, fmt.Errorf("failed to unmarshal pay period totals: %w", err)
			}
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pay periods: %w", err)
	}

	return periods, nil
}
