package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/schedule"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetEntry implements schedule.ScheduleRepository: the most recent
// version for the date's weekday with effective_on <= the date.
func (r *scheduleRepository) GetEntry(ctx context.Context, userID string, localDate time.Time) (*schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, weekday, enabled, start_time, end_time,
		       expected_hours, break_minutes, effective_on, created_at, updated_at
		FROM schedule_entries
		WHERE user_id = $1
		  AND weekday = $2
		  AND effective_on <= $3
		ORDER BY effective_on DESC
		LIMIT 1
	`

	var e schedule.ScheduleEntry
	err := q.QueryRow(ctx, query, userID, int(localDate.Weekday()), localDate).Scan(
		&e.ID, &e.UserID, &e.Weekday, &e.Enabled, &e.Start, &e.End,
		&e.ExpectedHours, &e.BreakMinutes, &e.EffectiveOn, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule entry: %w", err)
	}

	return &e, nil
}
