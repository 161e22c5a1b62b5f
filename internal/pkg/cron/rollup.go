package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
)

// RollupJobs materializes closed months into day-granular MonthFacts so
// the reconciler stops depending on raw session reconstruction for them.
type RollupJobs struct {
	clock      clock.Clock
	userRepo   user.UserRepository
	factRepo   attendance.MonthFactRepository
	summarySvc attendance.SummaryService
}

func NewRollupJobs(
	clk clock.Clock,
	userRepo user.UserRepository,
	factRepo attendance.MonthFactRepository,
	summarySvc attendance.SummaryService,
) *RollupJobs {
	return &RollupJobs{
		clock:      clk,
		userRepo:   userRepo,
		factRepo:   factRepo,
		summarySvc: summarySvc,
	}
}

func (j *RollupJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_month_facts", 6*time.Hour, j.MaterializeMonthFacts)
}

// MaterializeMonthFacts rolls up the previous local month for every
// active user that does not yet have a day-granular fact for it.
func (j *RollupJobs) MaterializeMonthFacts(ctx context.Context) error {
	now := time.Now()
	prevMonth := j.clock.StartOfMonth(now).AddDate(0, -1, 0)
	monthKey := j.clock.MonthKey(prevMonth)
	monthStart := j.clock.StartOfMonth(prevMonth)
	monthEnd := j.clock.EndOfMonth(prevMonth)

	users, err := j.userRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	materialized := 0
	for _, u := range users {
		existing, err := j.factRepo.GetMonthFact(ctx, u.ID, monthKey)
		if err != nil {
			slog.Warn("Cron: month fact lookup failed", "user_id", u.ID, "month", monthKey, "error", err)
			continue
		}
		if existing != nil && existing.Snapshot != nil {
			continue
		}

		summary, err := j.summarySvc.Summarize(ctx, u.ID, monthStart, monthEnd, now)
		if err != nil {
			slog.Warn("Cron: rollup failed", "user_id", u.ID, "month", monthKey, "error", err)
			continue
		}

		fact := factFromSummary(u.ID, monthKey, monthStart, monthEnd, summary)
		if _, err := j.factRepo.Upsert(ctx, fact); err != nil {
			slog.Warn("Cron: fact upsert failed", "user_id", u.ID, "month", monthKey, "error", err)
			continue
		}
		materialized++
	}

	if materialized > 0 {
		slog.Info("Cron: month facts materialized", "month", monthKey, "count", materialized)
	}
	return nil
}

func factFromSummary(userID, monthKey string, monthStart, monthEnd time.Time, summary attendance.Summary) attendance.MonthFact {
	snapshot := &attendance.MonthSnapshot{
		Days:           make([]attendance.DaySnapshot, 0, len(summary.Details)),
		MakeUpRequests: summary.MakeUpRequests,
	}
	for _, d := range summary.Details {
		snapshot.Days = append(snapshot.Days, attendance.DaySnapshot{
			Date:          d.Date,
			ExpectedHours: d.ExpectedHours,
			WorkedHours:   d.WorkedHours,
			PTOHours:      d.PTOHours,
			UTOHours:      d.UTOHours,
			MakeUpHours:   d.MakeUpHours,
			TardyMinutes:  d.TardyMinutes,
			ClockIn:       d.ClockIn,
			ClockOut:      d.ClockOut,
			BreakCount:    d.BreakCount,
			BreakMinutes:  d.BreakMinutes,
			LunchCount:    d.LunchCount,
			LunchMinutes:  d.LunchMinutes,
			IdleMinutes:   d.IdleMinutes,
			Notes:         d.Notes,
		})
	}

	return attendance.MonthFact{
		UserID:     userID,
		MonthKey:   monthKey,
		Snapshot:   snapshot,
		RangeStart: monthStart,
		RangeEnd:   monthEnd,
		Totals: attendance.FactTotals{
			WorkedHours:  summary.Totals.WorkedHours,
			PTOHours:     summary.Totals.PTOHours,
			UTOHours:     summary.Totals.UTOHours,
			MakeUpHours:  summary.Totals.MakeUpHours,
			TardyMinutes: summary.Totals.TardyMinutes,
		},
	}
}
