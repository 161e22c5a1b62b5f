package attendance

import "errors"

// Attendance domain errors
var (
	ErrMonthFactNotFound = errors.New("month fact not found")
)
