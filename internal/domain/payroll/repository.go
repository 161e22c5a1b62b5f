package payroll

import (
	"context"
	"time"
)

type PayPeriodRepository interface {
	// GetByPayDate returns the persisted period anchored at payDate.
	GetByPayDate(ctx context.Context, payDate time.Time) (*PayPeriod, error)

	// Upsert writes a period, replacing any existing row for its pay
	// date anchor.
	Upsert(ctx context.Context, period PayPeriod) (PayPeriod, error)

	// List returns periods with PayDate inside [start, end], newest
	// first.
	List(ctx context.Context, start, end time.Time) ([]PayPeriod, error)
}
