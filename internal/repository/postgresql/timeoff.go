package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type timeOffRepository struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.TimeOffRepository {
	return &timeOffRepository{db: db}
}

// GetApprovedCovering implements timeoff.TimeOffRepository.
func (r *timeOffRepository) GetApprovedCovering(ctx context.Context, userIDs []string, start, end time.Time) ([]timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, status, start_date, end_date, hours, note, created_at, updated_at
		FROM time_off_requests
		WHERE user_id = ANY($1)
		  AND status = 'approved'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, userIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query time-off requests: %w", err)
	}
	defer rows.Close()

	var requests []timeoff.TimeOffRequest
	for rows.Next() {
		var req timeoff.TimeOffRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.Status,
			&req.StartDate, &req.EndDate, &req.Hours, &req.Note,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time-off request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time-off requests: %w", err)
	}

	return requests, nil
}
