package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
	"github.com/workpulse/workpulse-backend-go/internal/service/payperiod"
)

// PayrollJobs drafts pay periods for closed coverage windows so payroll
// review starts from reconciled workforce totals.
type PayrollJobs struct {
	clock      clock.Clock
	userRepo   user.UserRepository
	periodRepo payroll.PayPeriodRepository
	periodSvc  *payperiod.Service
	summarySvc attendance.SummaryService
}

func NewPayrollJobs(
	clk clock.Clock,
	userRepo user.UserRepository,
	periodRepo payroll.PayPeriodRepository,
	periodSvc *payperiod.Service,
	summarySvc attendance.SummaryService,
) *PayrollJobs {
	return &PayrollJobs{
		clock:      clk,
		userRepo:   userRepo,
		periodRepo: periodRepo,
		periodSvc:  periodSvc,
		summarySvc: summarySvc,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("draft_pay_periods", 12*time.Hour, j.DraftPayPeriods)
}

// DraftPayPeriods materializes the most recent fully closed pay period.
// The anchor before now's anchor always has a window that ended in the
// past, so its totals are final short of corrections. Periods already
// approved or paid are never touched.
func (j *PayrollJobs) DraftPayPeriods(ctx context.Context) error {
	now := time.Now()
	anchor := j.periodSvc.Previous(now)
	window := j.periodSvc.Window(anchor)

	existing, err := j.periodRepo.GetByPayDate(ctx, window.PayDate)
	if err != nil && !errors.Is(err, payroll.ErrPayPeriodNotFound) {
		return fmt.Errorf("failed to look up pay period: %w", err)
	}
	if existing != nil && existing.Status != payroll.PayPeriodStatusDraft {
		return nil
	}

	users, err := j.userRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	var totals payroll.PayPeriodTotals
	for _, u := range users {
		summary, err := j.summarySvc.Summarize(ctx, u.ID, window.Start, window.End, now)
		if err != nil {
			slog.Warn("Cron: pay period summary failed", "user_id", u.ID, "pay_date", j.clock.DateKey(window.PayDate), "error", err)
			continue
		}
		totals.WorkedHours += summary.Totals.WorkedHours
		totals.PTOHours += summary.Totals.PTOHours
		totals.UTOHours += summary.Totals.UTOHours
		totals.MakeUpHours += summary.Totals.MakeUpHours
	}

	period := payroll.PayPeriod{
		PayDate:     window.PayDate,
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
		Status:      payroll.PayPeriodStatusDraft,
		Totals:      totals,
	}
	if existing != nil {
		period.ID = existing.ID
	}

	if _, err := j.periodRepo.Upsert(ctx, period); err != nil {
		return fmt.Errorf("failed to upsert pay period: %w", err)
	}

	slog.Info("Cron: pay period drafted", "pay_date", j.clock.DateKey(window.PayDate))
	return nil
}
