package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/roster"
	"github.com/workpulse/workpulse-backend-go/internal/domain/schedule"
	"github.com/workpulse/workpulse-backend-go/internal/domain/session"
	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/interval"
)

type RosterServiceImpl struct {
	clock clock.Clock
	session.SessionRepository
	timeoff.TimeOffRepository
	schedule.ScheduleRepository
}

func NewRosterService(
	clk clock.Clock,
	sessionRepo session.SessionRepository,
	timeOffRepo timeoff.TimeOffRepository,
	scheduleRepo schedule.ScheduleRepository,
) roster.Service {
	return &RosterServiceImpl{
		clock:              clk,
		SessionRepository:  sessionRepo,
		TimeOffRepository:  timeOffRepo,
		ScheduleRepository: scheduleRepo,
	}
}

// BuildRow implements roster.Service.
func (r *RosterServiceImpl) BuildRow(ctx context.Context, userID string, day, now time.Time) (roster.Row, error) {
	dayStart := r.clock.StartOfDay(day)
	dayEnd := r.clock.StartOfDayOffset(day, 1)

	sessions, err := r.SessionRepository.GetSessionsForRange(ctx, &userID, dayStart, dayEnd)
	if err != nil {
		return roster.Row{}, fmt.Errorf("failed to get sessions for range: %w", err)
	}

	row := roster.Row{
		UserID: userID,
		Date:   r.clock.DateKey(dayStart),
	}

	pauseIvs := r.dayPauseIntervals(sessions, now, dayStart, dayEnd)

	row.FirstLogin = firstLogin(sessions, dayStart, dayEnd)
	row.TardyMinutes = r.tardyMinutes(ctx, userID, dayStart, row.FirstLogin)
	r.countPauses(&row, sessions, now, dayStart, dayEnd)
	row.IdleMinutes = r.dayIdleMinutes(sessions, pauseIvs, now, dayStart, dayEnd)

	// A "current" status only exists for the current local day; for past
	// days the aggregates above are the whole answer.
	if r.clock.SameLocalDay(dayStart, now) {
		r.resolveStatus(ctx, &row, sessions, now, dayStart, dayEnd)
	}

	return row, nil
}

// BuildRoster implements roster.Service.
func (r *RosterServiceImpl) BuildRoster(ctx context.Context, userIDs []string, now time.Time) ([]roster.Row, error) {
	rows := make([]roster.Row, 0, len(userIDs))
	for _, userID := range userIDs {
		row, err := r.BuildRow(ctx, userID, now, now)
		if err != nil {
			// Best-effort roster: one user's bad data must not take the
			// whole board down.
			slog.Warn("skipping roster row", "user_id", userID, "error", err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// firstLogin is the earliest login event in the day across all sessions,
// falling back to the earliest session start in the day.
func firstLogin(sessions []session.Session, dayStart, dayEnd time.Time) *time.Time {
	var earliest *time.Time
	for _, s := range sessions {
		for _, e := range s.Events {
			if e.Type != session.EventTypeLogin {
				continue
			}
			if e.Timestamp.Before(dayStart) || !e.Timestamp.Before(dayEnd) {
				continue
			}
			if earliest == nil || e.Timestamp.Before(*earliest) {
				ts := e.Timestamp
				earliest = &ts
			}
		}
	}
	if earliest != nil {
		return earliest
	}
	for _, s := range sessions {
		if s.StartedAt.Before(dayStart) || !s.StartedAt.Before(dayEnd) {
			continue
		}
		if earliest == nil || s.StartedAt.Before(*earliest) {
			ts := s.StartedAt
			earliest = &ts
		}
	}
	return earliest
}

func (r *RosterServiceImpl) tardyMinutes(ctx context.Context, userID string, dayStart time.Time, firstLogin *time.Time) int {
	if firstLogin == nil {
		return 0
	}
	entry, err := r.ScheduleRepository.GetEntry(ctx, userID, dayStart)
	if err != nil {
		slog.Warn("schedule lookup failed, treating day as unscheduled", "user_id", userID, "error", err)
		return 0
	}
	if entry == nil {
		return 0
	}
	scheduledStart, err := entry.StartOn(dayStart, r.clock.Location())
	if err != nil {
		if !errors.Is(err, schedule.ErrNoScheduledStart) {
			slog.Warn("unusable schedule start", "user_id", userID, "error", err)
		}
		return 0
	}
	// A first login on a different local calendar day than the scheduled
	// start would produce absurd tardy values from multi-day-spanning
	// data; it is never counted.
	if !r.clock.SameLocalDay(*firstLogin, scheduledStart) {
		return 0
	}
	diff := firstLogin.Sub(scheduledStart).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(math.Round(diff))
}

// dayPauseIntervals clamps every pause touching the day into
// [dayStart, dayEnd). Open pauses run until now; a pause starting after
// now clamps away to nothing.
func (r *RosterServiceImpl) dayPauseIntervals(sessions []session.Session, now, dayStart, dayEnd time.Time) []interval.Interval {
	var ivs []interval.Interval
	for _, s := range sessions {
		for _, p := range s.Pauses {
			if iv, ok := interval.Clamp(p.StartedAt, p.EndedAt, now, dayStart, dayEnd); ok {
				ivs = append(ivs, iv)
			}
		}
	}
	return ivs
}

func (r *RosterServiceImpl) countPauses(row *roster.Row, sessions []session.Session, now, dayStart, dayEnd time.Time) {
	var breakIvs, lunchIvs []interval.Interval
	for _, s := range sessions {
		for _, p := range s.Pauses {
			if p.StartedAt.Before(dayStart) || !p.StartedAt.Before(dayEnd) {
				continue
			}
			iv, ok := interval.Clamp(p.StartedAt, p.EndedAt, now, dayStart, dayEnd)
			switch p.Type {
			case session.PauseTypeBreak:
				row.BreakCount++
				if ok {
					breakIvs = append(breakIvs, iv)
				}
			case session.PauseTypeLunch:
				row.LunchCount++
				if ok {
					lunchIvs = append(lunchIvs, iv)
				}
			}
		}
	}
	row.BreakMinutes = interval.SumMinutes(breakIvs)
	row.LunchMinutes = interval.SumMinutes(lunchIvs)
}

// dayIdleMinutes sums idle samples in the day that do not overlap any
// pause interval, across every session touching the day.
func (r *RosterServiceImpl) dayIdleMinutes(sessions []session.Session, pauseIvs []interval.Interval, now, dayStart, dayEnd time.Time) int {
	total := 0
	for _, s := range sessions {
		for _, m := range s.Samples {
			if !m.Idle {
				continue
			}
			if m.MinuteStart.Before(dayStart) || !m.MinuteStart.Before(dayEnd) || !m.MinuteStart.Before(now) {
				continue
			}
			if interval.AnyOverlaps(pauseIvs, m.MinuteStart, m.MinuteStart.Add(time.Minute)) {
				continue
			}
			total++
		}
	}
	return total
}

func (r *RosterServiceImpl) resolveStatus(ctx context.Context, row *roster.Row, sessions []session.Session, now, dayStart, dayEnd time.Time) {
	active := pickActiveSession(sessions)

	if active != nil {
		if p := openPause(active, session.PauseTypeLunch); p != nil {
			row.Status = roster.StatusLunch
			if p.Sequence >= 2 {
				row.StatusLabel = fmt.Sprintf("lunch #%d", p.Sequence)
			}
			since := p.StartedAt
			row.Since = &since
			return
		}
		if p := openPause(active, session.PauseTypeBreak); p != nil {
			row.Status = roster.StatusBreak
			row.StatusLabel = fmt.Sprintf("break #%d", p.Sequence)
			since := p.StartedAt
			row.Since = &since
			return
		}

		row.Status = roster.StatusActive
		since := activeSince(active, now)
		row.Since = &since

		exclusions := r.dayPauseIntervals([]session.Session{*active}, now, dayStart, dayEnd)
		samples := samplesInRange(active.Samples, dayStart, now)
		streak := resolveIdleStreak(samples, exclusions, now)
		row.IdleStreakStart = streak.Since
		row.IdleStreakLength = streak.Minutes
		return
	}

	if req := r.coveringTimeOff(ctx, row.UserID, dayStart); req != nil {
		switch req.Type {
		case timeoff.RequestTypePTO:
			row.Status = roster.StatusPTO
		case timeoff.RequestTypeUTO:
			row.Status = roster.StatusUTO
		case timeoff.RequestTypeMakeUp:
			row.Status = roster.StatusMakeUp
		}
		since := req.StartDate
		if since.Before(dayStart) {
			since = dayStart
		}
		row.Since = &since
		return
	}

	if last := lastCompletedSession(sessions, dayStart, dayEnd); last != nil {
		row.Status = roster.StatusLoggedOut
		since := *last.EndedAt
		row.Since = &since
		return
	}

	row.Status = roster.StatusNotLoggedIn
}

// pickActiveSession returns the open session, or the most recently
// started one when upstream data holds more than one. Never fails.
func pickActiveSession(sessions []session.Session) *session.Session {
	var active *session.Session
	for i := range sessions {
		s := &sessions[i]
		if !s.Open() {
			continue
		}
		if active == nil || s.StartedAt.After(active.StartedAt) {
			active = s
		}
	}
	return active
}

func openPause(s *session.Session, typ session.PauseType) *session.Pause {
	for i := range s.Pauses {
		p := &s.Pauses[i]
		if p.Type == typ && p.Open() {
			return p
		}
	}
	return nil
}

// activeSince is the end of the most recent pause that ended on or
// before now, or the session start when no pause has ended yet.
func activeSince(s *session.Session, now time.Time) time.Time {
	since := s.StartedAt
	for _, p := range s.Pauses {
		if p.EndedAt == nil || p.EndedAt.After(now) {
			continue
		}
		if p.EndedAt.After(since) {
			since = *p.EndedAt
		}
	}
	return since
}

func samplesInRange(samples []session.MinuteSample, start, end time.Time) []session.MinuteSample {
	out := make([]session.MinuteSample, 0, len(samples))
	for _, m := range samples {
		if m.MinuteStart.Before(start) || !m.MinuteStart.Before(end) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MinuteStart.Before(out[j].MinuteStart) })
	return out
}

// coveringTimeOff selects the approved request covering the day, ranked
// pto > uto > make_up with earliest start date breaking ties.
func (r *RosterServiceImpl) coveringTimeOff(ctx context.Context, userID string, dayStart time.Time) *timeoff.TimeOffRequest {
	dayEnd := r.clock.EndOfDay(dayStart)
	requests, err := r.TimeOffRepository.GetApprovedCovering(ctx, []string{userID}, dayStart, dayEnd)
	if err != nil {
		slog.Warn("time-off lookup failed", "user_id", userID, "error", err)
		return nil
	}

	var best *timeoff.TimeOffRequest
	for i := range requests {
		req := &requests[i]
		if !req.Covers(dayStart, dayEnd) {
			continue
		}
		if best == nil {
			best = req
			continue
		}
		bp, rp := best.Type.StatusPriority(), req.Type.StatusPriority()
		if rp < bp || (rp == bp && req.StartDate.Before(best.StartDate)) {
			best = req
		}
	}
	return best
}

func lastCompletedSession(sessions []session.Session, dayStart, dayEnd time.Time) *session.Session {
	var last *session.Session
	for i := range sessions {
		s := &sessions[i]
		if s.EndedAt == nil {
			continue
		}
		if s.EndedAt.Before(dayStart) || !s.EndedAt.Before(dayEnd) {
			continue
		}
		if last == nil || s.EndedAt.After(*last.EndedAt) {
			last = s
		}
	}
	return last
}
