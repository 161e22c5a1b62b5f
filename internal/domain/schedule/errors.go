package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleEntryNotFound = errors.New("schedule entry not found")
	ErrNoScheduledStart      = errors.New("no scheduled start time for this day")
)
