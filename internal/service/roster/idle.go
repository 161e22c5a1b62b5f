package roster

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/session"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/interval"
)

type idleStreak struct {
	Minutes int
	Since   *time.Time
}

// resolveIdleStreak finds the contiguous idle run ending at now. samples
// must be ordered by MinuteStart ascending and restricted to
// [dayStart, now]; exclusions are the day's clamped pause intervals.
// The scan walks backward from the most recent sample and stops at the
// first active minute or at any minute overlapping an exclusion, so
// pause time is never double-counted as idle. Only meaningful for a
// session that is currently open and not on a pause.
func resolveIdleStreak(samples []session.MinuteSample, exclusions []interval.Interval, now time.Time) idleStreak {
	var since *time.Time
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		if !s.Idle {
			break
		}
		windowEnd := s.MinuteStart.Add(time.Minute)
		if interval.AnyOverlaps(exclusions, s.MinuteStart, windowEnd) {
			break
		}
		start := s.MinuteStart
		since = &start
	}
	if since == nil {
		return idleStreak{}
	}
	return idleStreak{
		Minutes: interval.CeilMinutes(now.Sub(*since)),
		Since:   since,
	}
}
