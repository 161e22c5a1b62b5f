package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/session"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/interval"
)

var idleBase = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

func minuteAt(hh, mm int) time.Time {
	return time.Date(2024, 5, 6, hh, mm, 0, 0, time.UTC)
}

func idleRun(fromHH, fromMM, count int) []session.MinuteSample {
	samples := make([]session.MinuteSample, 0, count)
	start := minuteAt(fromHH, fromMM)
	for i := 0; i < count; i++ {
		samples = append(samples, session.MinuteSample{
			MinuteStart: start.Add(time.Duration(i) * time.Minute),
			Idle:        true,
		})
	}
	return samples
}

func TestResolveIdleStreak_UnbrokenRun(t *testing.T) {
	t.Parallel()

	// Idle 14:00-14:20, now at 14:20.
	samples := idleRun(14, 0, 20)
	streak := resolveIdleStreak(samples, nil, minuteAt(14, 20))

	require.NotNil(t, streak.Since)
	assert.Equal(t, minuteAt(14, 0), *streak.Since)
	assert.Equal(t, 20, streak.Minutes)
}

func TestResolveIdleStreak_StopsAtActiveMinute(t *testing.T) {
	t.Parallel()

	samples := append([]session.MinuteSample{
		{MinuteStart: minuteAt(13, 59), Active: true},
	}, idleRun(14, 0, 20)...)
	streak := resolveIdleStreak(samples, nil, minuteAt(14, 20))

	require.NotNil(t, streak.Since)
	assert.Equal(t, minuteAt(14, 0), *streak.Since)
	assert.Equal(t, 20, streak.Minutes)
}

func TestResolveIdleStreak_StopsAtPauseBoundary(t *testing.T) {
	t.Parallel()

	// Same run, but a break 14:05-14:10 splits it: the scan must stop at
	// 14:10 so pause time is never counted as idle.
	samples := idleRun(14, 0, 20)
	exclusions := []interval.Interval{{Start: minuteAt(14, 5), End: minuteAt(14, 10)}}
	streak := resolveIdleStreak(samples, exclusions, minuteAt(14, 20))

	require.NotNil(t, streak.Since)
	assert.Equal(t, minuteAt(14, 10), *streak.Since)
	assert.Equal(t, 10, streak.Minutes)
}

func TestResolveIdleStreak_MostRecentMinuteNotIdle(t *testing.T) {
	t.Parallel()

	samples := append(idleRun(14, 0, 19), session.MinuteSample{
		MinuteStart: minuteAt(14, 19), Active: true,
	})
	streak := resolveIdleStreak(samples, nil, minuteAt(14, 20))

	assert.Nil(t, streak.Since)
	assert.Equal(t, 0, streak.Minutes)
}

func TestResolveIdleStreak_NoSamples(t *testing.T) {
	t.Parallel()
	streak := resolveIdleStreak(nil, nil, idleBase)
	assert.Nil(t, streak.Since)
	assert.Equal(t, 0, streak.Minutes)
}

func TestResolveIdleStreak_PartialMinuteRoundsUp(t *testing.T) {
	t.Parallel()

	// now 30s past the last sampled minute: 20m30s ceils to 21.
	samples := idleRun(14, 0, 20)
	streak := resolveIdleStreak(samples, nil, minuteAt(14, 20).Add(30*time.Second))
	assert.Equal(t, 21, streak.Minutes)
}
