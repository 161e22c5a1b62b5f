package roster

import (
	"context"
	"time"
)

// Service derives live presence rows from session, time-off and schedule
// records.
type Service interface {
	// BuildRow computes one user's row for the local day containing day.
	// now must be captured once per logical computation and threaded
	// through; Status is only populated when day is now's local day.
	BuildRow(ctx context.Context, userID string, day, now time.Time) (Row, error)

	// BuildRoster computes rows for many users for now's local day.
	BuildRoster(ctx context.Context, userIDs []string, now time.Time) ([]Row, error)
}
