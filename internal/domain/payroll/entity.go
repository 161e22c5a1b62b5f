package payroll

import "time"

type PayPeriodStatus string

const (
	PayPeriodStatusDraft    PayPeriodStatus = "draft"
	PayPeriodStatusApproved PayPeriodStatus = "approved"
	PayPeriodStatusPaid     PayPeriodStatus = "paid"
)

// PayPeriod is a semi-monthly payroll window. PayDate is always one of
// the two canonical anchors (the 15th or the last calendar day); a 15th
// pay date covers the second half of the prior month, an end-of-month pay
// date covers the first half of the current month.
type PayPeriod struct {
	ID          string
	PayDate     time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      PayPeriodStatus
	Totals      PayPeriodTotals
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayPeriodTotals are workforce-wide rollups written by the payroll
// engine when the period is computed.
type PayPeriodTotals struct {
	WorkedHours float64 `json:"worked_hours"`
	PTOHours    float64 `json:"pto_hours"`
	UTOHours    float64 `json:"uto_hours"`
	MakeUpHours float64 `json:"make_up_hours"`
}

// Window is a computed coverage window before any persistence.
type Window struct {
	PayDate time.Time
	Start   time.Time
	End     time.Time
}
