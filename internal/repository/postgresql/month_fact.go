package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type monthFactRepository struct {
	db *database.DB
}

func NewMonthFactRepository(db *database.DB) attendance.MonthFactRepository {
	return &monthFactRepository{db: db}
}

// GetMonthFact implements attendance.MonthFactRepository. A corrupt
// snapshot degrades the fact to its month-level totals instead of
// failing the lookup.
func (r *monthFactRepository) GetMonthFact(ctx context.Context, userID, monthKey string) (*attendance.MonthFact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month_key, snapshot, totals, range_start, range_end, created_at, updated_at
		FROM month_facts
		WHERE user_id = $1
		  AND month_key = $2
		LIMIT 1
	`

	var fact attendance.MonthFact
	var snapshotRaw, totalsRaw []byte
	err := q.QueryRow(ctx, query, userID, monthKey).Scan(
		&fact.ID, &fact.UserID, &fact.MonthKey, &snapshotRaw, &totalsRaw,
		&fact.RangeStart, &fact.RangeEnd, &fact.CreatedAt, &fact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get month fact: %w", err)
	}

	if len(totalsRaw) > 0 {
		if err := json.Unmarshal(totalsRaw, &fact.Totals); err != nil {
			slog.Warn("month fact has corrupt totals", "user_id", userID, "month", monthKey, "error", err)
		}
	}
	if len(snapshotRaw) > 0 {
		var snapshot attendance.MonthSnapshot
		if err := json.Unmarshal(snapshotRaw, &snapshot); err != nil {
			slog.Warn("month fact has corrupt snapshot, using totals only",
				"user_id", userID, "month", monthKey, "error", err)
		} else {
			fact.Snapshot = &snapshot
		}
	}

	return &fact, nil
}

// Upsert implements attendance.MonthFactRepository.
func (r *monthFactRepository) Upsert(ctx context.Context, fact attendance.MonthFact) (attendance.MonthFact, error) {
	q := GetQuerier(ctx, r.db)

	if fact.ID == "" {
		fact.ID = uuid.NewString()
	}
	totalsRaw, err := json.Marshal(fact.Totals)
	if err != nil {
		return attendance.MonthFact{}, fmt.Errorf("failed to marshal totals: %w", err)
	}
	var snapshotRaw []byte
	if fact.Snapshot != nil {
		snapshotRaw, err = json.Marshal(fact.Snapshot)
		if err != nil {
			return attendance.MonthFact{}, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
	}

	query := `
		INSERT INTO month_facts (id, user_id, month_key, snapshot, totals, range_start, range_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, month_key) DO UPDATE SET
			snapshot = EXCLUDED.snapshot,
			totals = EXCLUDED.totals,
			range_start = EXCLUDED.range_start,
			range_end = EXCLUDED.range_end,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		fact.ID, fact.UserID, fact.MonthKey, snapshotRaw, totalsRaw, fact.RangeStart, fact.RangeEnd,
	).Scan(&fact.ID, &fact.CreatedAt, &fact.UpdatedAt)
	if err != nil {
		return attendance.MonthFact{}, fmt.Errorf("failed to upsert month fact: %w", err)
	}

	return fact, nil
}
