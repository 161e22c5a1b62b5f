package schedule

import (
	"fmt"
	"time"
)

// ScheduleEntry is one weekday's expectations for a user. Entries are
// versioned: the entry in force for a date is the most recent version
// with EffectiveOn <= that date (the repository resolves this).
type ScheduleEntry struct {
	ID            string
	UserID        string
	Weekday       int // 0=Sunday ... 6=Saturday
	Enabled       bool
	Start         string // "HH:MM" local wall clock
	End           string
	ExpectedHours float64
	BreakMinutes  int
	EffectiveOn   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StartOn resolves the entry's start time on a given local day. Returns
// an error when the entry is disabled or carries no parseable start.
func (e ScheduleEntry) StartOn(day time.Time, loc *time.Location) (time.Time, error) {
	if !e.Enabled || e.Start == "" {
		return time.Time{}, ErrNoScheduledStart
	}
	var hh, mm int
	if _, err := fmt.Sscanf(e.Start, "%d:%d", &hh, &mm); err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule start %q: %w", e.Start, err)
	}
	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), hh, mm, 0, 0, loc), nil
}
