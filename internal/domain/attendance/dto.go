package attendance

import "time"

// DayDetail is one reconciled day in an attendance summary. Snapshotted
// fields keep their materialized values; live session data overlays the
// clock/break/lunch/idle metrics.
type DayDetail struct {
	Date          string     `json:"date"` // "YYYY-MM-DD" local
	ExpectedHours float64    `json:"expected_hours"`
	WorkedHours   float64    `json:"worked_hours"`
	PTOHours      float64    `json:"pto_hours"`
	UTOHours      float64    `json:"uto_hours"`
	MakeUpHours   float64    `json:"make_up_hours"`
	TardyMinutes  int        `json:"tardy_minutes"`
	ClockIn       *time.Time `json:"clock_in,omitempty"`
	ClockOut      *time.Time `json:"clock_out,omitempty"`
	BreakCount    int        `json:"break_count"`
	BreakMinutes  int        `json:"break_minutes"`
	LunchCount    int        `json:"lunch_count"`
	LunchMinutes  int        `json:"lunch_minutes"`
	IdleMinutes   int        `json:"idle_minutes"`
	Notes         *string    `json:"notes,omitempty"`
}

// SummaryTotals are period-wide accumulations across all merged sources.
type SummaryTotals struct {
	WorkedHours   float64 `json:"worked_hours"`
	PTOHours      float64 `json:"pto_hours"`
	UTOHours      float64 `json:"uto_hours"`
	MakeUpHours   float64 `json:"make_up_hours"`
	TardyMinutes  int     `json:"tardy_minutes"`
	TardyEvents   int     `json:"tardy_events"`
	ScheduledDays int     `json:"scheduled_days"`
	OnTimeDays    int     `json:"on_time_days"`
}

// Summary is the reconciled attendance for one user over one range.
type Summary struct {
	UserID         string          `json:"user_id"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	Details        []DayDetail     `json:"details"`
	MakeUpRequests []MakeUpRequest `json:"make_up_requests"`
	Totals         SummaryTotals   `json:"totals"`
}
