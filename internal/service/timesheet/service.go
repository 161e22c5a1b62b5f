package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/session"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/interval"
)

// TimesheetServiceImpl reconciles three granularities of attendance fact
// into one summary: day-granular month-fact snapshots, coarse month
// facts prorated across the overlap, and live sessions for days no fact
// has rolled up yet.
type TimesheetServiceImpl struct {
	clock clock.Clock
	attendance.MonthFactRepository
	session.SessionRepository
}

func NewTimesheetService(
	clk clock.Clock,
	monthFactRepo attendance.MonthFactRepository,
	sessionRepo session.SessionRepository,
) attendance.SummaryService {
	return &TimesheetServiceImpl{
		clock:               clk,
		MonthFactRepository: monthFactRepo,
		SessionRepository:   sessionRepo,
	}
}

// Summarize implements attendance.SummaryService.
func (t *TimesheetServiceImpl) Summarize(ctx context.Context, userID string, periodStart, periodEnd, now time.Time) (attendance.Summary, error) {
	summary := attendance.Summary{
		UserID:         userID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		MakeUpRequests: []attendance.MakeUpRequest{},
	}
	details := map[string]*attendance.DayDetail{}

	for _, key := range t.monthKeysTouched(periodStart, periodEnd) {
		fact, err := t.MonthFactRepository.GetMonthFact(ctx, userID, key)
		if err != nil {
			// A broken fact degrades one month to live-only data; the
			// summary itself proceeds.
			slog.Warn("skipping month fact", "user_id", userID, "month", key, "error", err)
			continue
		}
		if fact == nil {
			continue
		}
		if fact.Snapshot != nil && len(fact.Snapshot.Days) > 0 {
			t.mergeSnapshot(&summary, details, fact, periodStart, periodEnd)
		} else {
			t.prorateCoarseFact(&summary, fact, periodStart, periodEnd)
		}
	}

	if err := t.overlayLiveSessions(ctx, details, userID, periodStart, periodEnd, now); err != nil {
		return attendance.Summary{}, err
	}

	summary.Details = make([]attendance.DayDetail, 0, len(details))
	for _, d := range details {
		summary.Details = append(summary.Details, *d)
	}
	sort.Slice(summary.Details, func(i, j int) bool {
		return summary.Details[i].Date < summary.Details[j].Date
	})

	summary.Totals.WorkedHours = round2(summary.Totals.WorkedHours)
	summary.Totals.PTOHours = round2(summary.Totals.PTOHours)
	summary.Totals.UTOHours = round2(summary.Totals.UTOHours)
	summary.Totals.MakeUpHours = round2(summary.Totals.MakeUpHours)

	return summary, nil
}

func (t *TimesheetServiceImpl) monthKeysTouched(periodStart, periodEnd time.Time) []string {
	var keys []string
	for m := t.clock.StartOfMonth(periodStart); !m.After(periodEnd); m = m.AddDate(0, 1, 0) {
		keys = append(keys, t.clock.MonthKey(m))
	}
	return keys
}

// mergeSnapshot folds a day-granular fact into the per-day details and
// the period totals.
func (t *TimesheetServiceImpl) mergeSnapshot(summary *attendance.Summary, details map[string]*attendance.DayDetail, fact *attendance.MonthFact, periodStart, periodEnd time.Time) {
	rangeStart := t.clock.StartOfDay(periodStart)

	for _, day := range fact.Snapshot.Days {
		dayDate, err := time.ParseInLocation("2006-01-02", day.Date, t.clock.Location())
		if err != nil {
			slog.Warn("skipping snapshot day with bad date", "month", fact.MonthKey, "date", day.Date)
			continue
		}
		if dayDate.Before(rangeStart) || dayDate.After(periodEnd) {
			continue
		}

		detail := ensureDetail(details, day.Date)
		detail.ExpectedHours = day.ExpectedHours
		detail.WorkedHours = day.WorkedHours
		detail.PTOHours = day.PTOHours
		detail.UTOHours = day.UTOHours
		detail.MakeUpHours = day.MakeUpHours
		detail.TardyMinutes = day.TardyMinutes
		detail.ClockIn = day.ClockIn
		detail.ClockOut = day.ClockOut
		detail.BreakCount = day.BreakCount
		detail.BreakMinutes = day.BreakMinutes
		detail.LunchCount = day.LunchCount
		detail.LunchMinutes = day.LunchMinutes
		detail.IdleMinutes = day.IdleMinutes
		detail.Notes = day.Notes

		summary.Totals.WorkedHours += day.WorkedHours
		summary.Totals.PTOHours += day.PTOHours
		summary.Totals.UTOHours += day.UTOHours
		summary.Totals.MakeUpHours += day.MakeUpHours
		summary.Totals.TardyMinutes += day.TardyMinutes
		if day.TardyMinutes > 0 {
			summary.Totals.TardyEvents++
		}
		if day.ExpectedHours > 0 {
			summary.Totals.ScheduledDays++
			if day.TardyMinutes == 0 {
				summary.Totals.OnTimeDays++
			}
		}
	}

	for _, req := range fact.Snapshot.MakeUpRequests {
		if t.makeUpOverlapsRange(req, periodStart, periodEnd) {
			summary.MakeUpRequests = append(summary.MakeUpRequests, req)
		}
	}
}

func (t *TimesheetServiceImpl) makeUpOverlapsRange(req attendance.MakeUpRequest, periodStart, periodEnd time.Time) bool {
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, t.clock.Location())
	if err != nil {
		return false
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, t.clock.Location())
	if err != nil {
		return false
	}
	return !start.After(periodEnd) && !t.clock.EndOfDay(end).Before(periodStart)
}

// prorateCoarseFact spreads a month-level-only fact uniformly across its
// own date range and contributes the share overlapping the query range.
// A deliberate approximation, only used when finer data was never
// materialized; it never fails, it only produces a best-effort number.
func (t *TimesheetServiceImpl) prorateCoarseFact(summary *attendance.Summary, fact *attendance.MonthFact, periodStart, periodEnd time.Time) {
	overlapStart := fact.RangeStart
	if periodStart.After(overlapStart) {
		overlapStart = periodStart
	}
	overlapEnd := fact.RangeEnd
	if periodEnd.Before(overlapEnd) {
		overlapEnd = periodEnd
	}
	if overlapEnd.Before(overlapStart) {
		return
	}

	overlapDays := t.localDaySpan(overlapStart, overlapEnd)
	totalFactDays := t.localDaySpan(fact.RangeStart, fact.RangeEnd)
	ratio := overlapDays / totalFactDays

	summary.Totals.WorkedHours += ratio * fact.Totals.WorkedHours
	summary.Totals.PTOHours += ratio * fact.Totals.PTOHours
	summary.Totals.UTOHours += ratio * fact.Totals.UTOHours
	summary.Totals.MakeUpHours += ratio * fact.Totals.MakeUpHours
	summary.Totals.TardyMinutes += int(math.Round(ratio * float64(fact.Totals.TardyMinutes)))
	summary.Totals.ScheduledDays += int(math.Round(overlapDays))
	summary.Totals.OnTimeDays += int(math.Round(overlapDays))
}

// localDaySpan counts local calendar days in [start, end] inclusive,
// clamped to a minimum of one so proration can never divide by zero.
func (t *TimesheetServiceImpl) localDaySpan(start, end time.Time) float64 {
	a := t.clock.StartOfDay(start)
	b := t.clock.StartOfDay(end)
	days := math.Round(b.Sub(a).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// liveDay accumulates one day's metrics reconstructed from live
// sessions before merging into the detail records.
type liveDay struct {
	clockIn     *time.Time
	clockOut    *time.Time
	breakCount  int
	lunchCount  int
	breakIvs    []interval.Interval
	lunchIvs    []interval.Interval
	pauseIvs    []interval.Interval
	idleMinutes int
}

// overlayLiveSessions reconstructs per-day metrics from sessions
// overlapping the range. Live data is authoritative for days no fact has
// rolled up; for snapshotted days it fills minute-level gaps without
// double-counting what the snapshot already holds.
func (t *TimesheetServiceImpl) overlayLiveSessions(ctx context.Context, details map[string]*attendance.DayDetail, userID string, periodStart, periodEnd, now time.Time) error {
	sessions, err := t.SessionRepository.GetSessionsForRange(ctx, &userID, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("failed to get sessions for range: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}

	rangeStart := t.clock.StartOfDay(periodStart)
	live := map[string]*liveDay{}
	day := func(at time.Time) (*liveDay, time.Time, time.Time, bool) {
		if at.Before(rangeStart) || at.After(periodEnd) {
			return nil, time.Time{}, time.Time{}, false
		}
		key := t.clock.DateKey(at)
		ld, ok := live[key]
		if !ok {
			ld = &liveDay{}
			live[key] = ld
		}
		return ld, t.clock.StartOfDay(at), t.clock.StartOfDayOffset(at, 1), true
	}

	for _, s := range sessions {
		if ld, _, _, ok := day(s.StartedAt); ok {
			if ld.clockIn == nil || s.StartedAt.Before(*ld.clockIn) {
				started := s.StartedAt
				ld.clockIn = &started
			}
			if s.EndedAt != nil && (ld.clockOut == nil || s.EndedAt.After(*ld.clockOut)) {
				ended := *s.EndedAt
				ld.clockOut = &ended
			}
		}

		for _, p := range s.Pauses {
			ld, dayStart, dayEnd, ok := day(p.StartedAt)
			if !ok {
				continue
			}
			iv, clamped := interval.Clamp(p.StartedAt, p.EndedAt, now, dayStart, dayEnd)
			switch p.Type {
			case session.PauseTypeBreak:
				ld.breakCount++
				if clamped {
					ld.breakIvs = append(ld.breakIvs, iv)
				}
			case session.PauseTypeLunch:
				ld.lunchCount++
				if clamped {
					ld.lunchIvs = append(ld.lunchIvs, iv)
				}
			}
			if clamped {
				ld.pauseIvs = append(ld.pauseIvs, iv)
			}
		}
	}

	// Idle needs every pause of the day collected first, never only the
	// owning session's.
	for _, s := range sessions {
		for _, m := range s.Samples {
			if !m.Idle || !m.MinuteStart.Before(now) {
				continue
			}
			ld, _, _, ok := day(m.MinuteStart)
			if !ok {
				continue
			}
			if interval.AnyOverlaps(ld.pauseIvs, m.MinuteStart, m.MinuteStart.Add(time.Minute)) {
				continue
			}
			ld.idleMinutes++
		}
	}

	for key, ld := range live {
		detail := ensureDetail(details, key)
		if ld.clockIn != nil && (detail.ClockIn == nil || ld.clockIn.Before(*detail.ClockIn)) {
			detail.ClockIn = ld.clockIn
		}
		if ld.clockOut != nil && (detail.ClockOut == nil || ld.clockOut.After(*detail.ClockOut)) {
			detail.ClockOut = ld.clockOut
		}
		detail.BreakCount = max(detail.BreakCount, ld.breakCount)
		detail.BreakMinutes = max(detail.BreakMinutes, interval.SumMinutes(ld.breakIvs))
		detail.LunchCount = max(detail.LunchCount, ld.lunchCount)
		detail.LunchMinutes = max(detail.LunchMinutes, interval.SumMinutes(ld.lunchIvs))
		detail.IdleMinutes = max(detail.IdleMinutes, ld.idleMinutes)
	}

	return nil
}

func ensureDetail(details map[string]*attendance.DayDetail, date string) *attendance.DayDetail {
	if d, ok := details[date]; ok {
		return d
	}
	d := &attendance.DayDetail{Date: date}
	details[date] = d
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
