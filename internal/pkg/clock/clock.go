package clock

import (
	"fmt"
	"time"
)

// Clock converts between absolute instants and wall-clock time in the
// single payroll timezone. All day/month boundary math in the application
// goes through Clock so that UTC boundaries never leak into range queries.
type Clock struct {
	loc *time.Location
}

// New loads the IANA zone. An invalid identifier is a startup
// configuration failure, never a runtime one.
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return Clock{loc: loc}, nil
}

// MustNew is for tests and fixtures with known-good zones.
func MustNew(timezone string) Clock {
	c, err := New(timezone)
	if err != nil {
		panic(err)
	}
	return c
}

// Location returns the configured zone.
func (c Clock) Location() *time.Location {
	return c.loc
}

// In converts an instant to local wall-clock time.
func (c Clock) In(t time.Time) time.Time {
	return t.In(c.loc)
}

// StartOfDay returns midnight of t's local calendar day as an instant.
func (c Clock) StartOfDay(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// EndOfDay returns 23:59:59.999 of t's local calendar day. The
// millisecond day-end is load-bearing: period ends are stored inclusive.
func (c Clock) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// StartOfDayOffset returns midnight of the local day `days` after t's day.
func (c Clock) StartOfDayOffset(t time.Time, days int) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, days)
}

// StartOfMonth returns midnight of the 1st of t's local month.
func (c Clock) StartOfMonth(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, c.loc)
}

// EndOfMonth returns 23:59:59.999 of the last local day of t's month.
func (c Clock) EndOfMonth(t time.Time) time.Time {
	return c.StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Millisecond)
}

// LastDayOfMonth returns the day-of-month number of t's last local day.
func (c Clock) LastDayOfMonth(t time.Time) int {
	return c.StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// MonthKey formats t's local month as "YYYY-MM".
func (c Clock) MonthKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01")
}

// DateKey formats t's local calendar day as "YYYY-MM-DD".
func (c Clock) DateKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02")
}

// MonthKeyRange resolves a "YYYY-MM" key to the month's local start and
// end instants.
func (c Clock) MonthKeyRange(key string) (start, end time.Time, err error) {
	t, err := time.ParseInLocation("2006-01", key, c.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return c.StartOfMonth(t), c.EndOfMonth(t), nil
}

// SameLocalDay reports whether two instants fall on the same local
// calendar day.
func (c Clock) SameLocalDay(a, b time.Time) bool {
	al, bl := a.In(c.loc), b.In(c.loc)
	return al.Year() == bl.Year() && al.YearDay() == bl.YearDay()
}
