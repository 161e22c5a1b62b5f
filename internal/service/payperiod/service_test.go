package payperiod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(clock.MustNew("America/New_York"))
}

func localDate(t *testing.T, s *Service, value string) time.Time {
	t.Helper()
	d, err := s.ParsePayDate(value)
	require.NoError(t, err)
	return d
}

func TestParsePayDate_Invalid(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	_, err := s.ParsePayDate("02/15/2024")
	assert.ErrorIs(t, err, payroll.ErrInvalidPayDate)

	_, err = s.ParsePayDate("")
	assert.ErrorIs(t, err, payroll.ErrInvalidPayDate)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	cases := []struct {
		in   string
		want string
	}{
		{"2024-02-10", "2024-02-15"},
		{"2024-02-15", "2024-02-15"},
		{"2024-02-20", "2024-02-29"}, // leap year last day
		{"2024-02-29", "2024-02-29"},
		{"2023-02-20", "2023-02-28"},
		{"2024-04-01", "2024-04-15"},
		{"2024-04-16", "2024-04-30"},
		{"2024-12-31", "2024-12-31"},
	}
	for _, tc := range cases {
		got := s.Normalize(localDate(t, s, tc.in))
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "normalize(%s)", tc.in)
	}
}

func TestWindow_FifteenthPaysPriorSecondHalf(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	w := s.Window(localDate(t, s, "2024-02-10"))

	assert.Equal(t, "2024-02-15", w.PayDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-16 00:00:00.000", w.Start.Format("2006-01-02 15:04:05.000"))
	assert.Equal(t, "2024-01-31 23:59:59.999", w.End.Format("2006-01-02 15:04:05.000"))
}

func TestWindow_LastDayPaysCurrentFirstHalf(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	w := s.Window(localDate(t, s, "2024-02-20"))

	assert.Equal(t, "2024-02-29", w.PayDate.Format("2006-01-02"))
	assert.Equal(t, "2024-02-01 00:00:00.000", w.Start.Format("2006-01-02 15:04:05.000"))
	assert.Equal(t, "2024-02-15 23:59:59.999", w.End.Format("2006-01-02 15:04:05.000"))
}

func TestWindow_JanuaryFifteenthCrossesYear(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	w := s.Window(localDate(t, s, "2024-01-15"))

	assert.Equal(t, "2023-12-16", w.Start.Format("2006-01-02"))
	assert.Equal(t, "2023-12-31", w.End.Format("2006-01-02"))
}

func TestNormalize_WindowRoundTrips(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	for _, in := range []string{"2024-01-03", "2024-02-10", "2024-02-20", "2024-06-15", "2024-07-31", "2024-12-20"} {
		d := localDate(t, s, in)
		w := s.Window(d)
		assert.True(t, s.Normalize(w.PayDate).Equal(s.Normalize(d)), "round trip %s", in)
	}
}

func TestPrevious(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	// 15th anchor -> last day of previous month.
	prev := s.Previous(localDate(t, s, "2024-03-15"))
	assert.Equal(t, "2024-02-29", prev.Format("2006-01-02"))

	// End-of-month anchor -> 15th of same month.
	prev = s.Previous(localDate(t, s, "2024-03-31"))
	assert.Equal(t, "2024-03-15", prev.Format("2006-01-02"))
}

func TestPrevious_WindowsAreContiguous(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	for _, in := range []string{"2024-03-15", "2024-03-31", "2024-01-15", "2024-02-29"} {
		d := localDate(t, s, in)
		current := s.Window(d)
		previous := s.Window(s.Previous(d))
		// The previous period ends exactly one instant before the
		// current one starts: no gap, no overlap.
		assert.Equal(t, time.Millisecond, current.Start.Sub(previous.End), "contiguity at %s", in)
	}
}
