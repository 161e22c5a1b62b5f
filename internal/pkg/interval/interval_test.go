package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func at(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

func atPtr(min int) *time.Time {
	t := at(min)
	return &t
}

func TestClamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start      time.Time
		end        *time.Time
		now        time.Time
		rangeStart time.Time
		rangeEnd   time.Time
		want       Interval
		ok         bool
	}{
		{
			name:  "closed interval inside range",
			start: at(10), end: atPtr(20), now: at(60),
			rangeStart: at(0), rangeEnd: at(120),
			want: Interval{at(10), at(20)}, ok: true,
		},
		{
			name:  "open end substitutes now",
			start: at(10), end: nil, now: at(45),
			rangeStart: at(0), rangeEnd: at(120),
			want: Interval{at(10), at(45)}, ok: true,
		},
		{
			name:  "both endpoints clamped",
			start: at(-30), end: atPtr(500), now: at(600),
			rangeStart: at(0), rangeEnd: at(120),
			want: Interval{at(0), at(120)}, ok: true,
		},
		{
			name:  "zero length discarded",
			start: at(10), end: atPtr(10), now: at(60),
			rangeStart: at(0), rangeEnd: at(120),
			ok: false,
		},
		{
			name:  "start after now yields nothing",
			start: at(90), end: nil, now: at(60),
			rangeStart: at(0), rangeEnd: at(120),
			ok: false,
		},
		{
			name:  "entirely before range",
			start: at(-60), end: atPtr(-30), now: at(60),
			rangeStart: at(0), rangeEnd: at(120),
			ok: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Clamp(tc.start, tc.end, tc.now, tc.rangeStart, tc.rangeEnd)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.True(t, got.Start.Equal(tc.want.Start), "start %v want %v", got.Start, tc.want.Start)
				assert.True(t, got.End.Equal(tc.want.End), "end %v want %v", got.End, tc.want.End)
			}
		})
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	t.Parallel()
	iv := Interval{at(10), at(20)}

	assert.True(t, iv.Overlaps(at(15), at(25)))
	assert.True(t, iv.Overlaps(at(19), at(20)))
	// Touching endpoints do not overlap.
	assert.False(t, iv.Overlaps(at(20), at(30)))
	assert.False(t, iv.Overlaps(at(0), at(10)))
}

func TestAnyOverlaps(t *testing.T) {
	t.Parallel()
	ivs := []Interval{{at(0), at(5)}, {at(30), at(40)}}

	assert.True(t, AnyOverlaps(ivs, at(35), at(36)))
	assert.False(t, AnyOverlaps(ivs, at(10), at(30)))
	assert.False(t, AnyOverlaps(nil, at(0), at(100)))
}

func TestSumMinutes(t *testing.T) {
	t.Parallel()

	// Partial minutes round up; 90 seconds counts as 2 minutes.
	part := Interval{at(0), at(0).Add(90 * time.Second)}
	assert.Equal(t, 2, SumMinutes([]Interval{part}))

	assert.Equal(t, 15, SumMinutes([]Interval{{at(0), at(10)}, {at(20), at(25)}}))
	assert.Equal(t, 0, SumMinutes(nil))

	// Inverted interval contributes zero, never negative.
	assert.Equal(t, 0, SumMinutes([]Interval{{at(10), at(0)}}))
}

func TestCeilMinutes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, CeilMinutes(-time.Minute))
	assert.Equal(t, 0, CeilMinutes(0))
	assert.Equal(t, 1, CeilMinutes(time.Second))
	assert.Equal(t, 1, CeilMinutes(time.Minute))
	assert.Equal(t, 2, CeilMinutes(time.Minute+time.Millisecond))
}
