package attendance

import "context"

type MonthFactRepository interface {
	// GetMonthFact returns the fact for (userID, monthKey), or nil when
	// no fact was ever materialized for that month.
	GetMonthFact(ctx context.Context, userID, monthKey string) (*MonthFact, error)

	// Upsert writes a materialized fact, replacing any existing row for
	// the same (userID, monthKey).
	Upsert(ctx context.Context, fact MonthFact) (MonthFact, error)
}
