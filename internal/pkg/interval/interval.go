package interval

import (
	"math"
	"time"
)

// Interval is a half-open time range [Start, End). Pauses, sessions and
// idle exclusion windows are all expressed as Intervals so overlap
// semantics stay identical everywhere they are compared.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval intersects [start, end).
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && end.After(iv.Start)
}

// Duration returns the interval length, never negative.
func (iv Interval) Duration() time.Duration {
	d := iv.End.Sub(iv.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Clamp fits a possibly open-ended range into [rangeStart, rangeEnd]. An
// open end is substituted with now. Returns false when the clamped range
// degenerates to zero or negative length, which callers must discard.
func Clamp(start time.Time, end *time.Time, now, rangeStart, rangeEnd time.Time) (Interval, bool) {
	e := now
	if end != nil {
		e = *end
	}
	s := start
	if s.Before(rangeStart) {
		s = rangeStart
	}
	if s.After(rangeEnd) {
		s = rangeEnd
	}
	if e.After(rangeEnd) {
		e = rangeEnd
	}
	if e.Before(rangeStart) {
		e = rangeStart
	}
	if !e.After(s) {
		return Interval{}, false
	}
	return Interval{Start: s, End: e}, true
}

// AnyOverlaps reports whether any interval in the set intersects
// [start, end).
func AnyOverlaps(ivs []Interval, start, end time.Time) bool {
	for _, iv := range ivs {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// SumMinutes totals a set of intervals in whole minutes. Any partial
// minute counts as a full minute, matching the minute granularity of the
// underlying activity samples.
func SumMinutes(ivs []Interval) int {
	total := 0
	for _, iv := range ivs {
		total += CeilMinutes(iv.Duration())
	}
	return total
}

// CeilMinutes converts a duration to whole minutes, rounding up and
// flooring at zero.
func CeilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d.Milliseconds()) / 60000.0))
}
