package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// GetEntry returns the entry in force for the user on localDate's
	// weekday: the most recent version with EffectiveOn <= localDate.
	// Returns nil (no error) when no entry exists.
	GetEntry(ctx context.Context, userID string, localDate time.Time) (*ScheduleEntry, error)
}
