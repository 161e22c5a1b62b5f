package timeoff

import "context"

// AllowanceService answers how much of the monthly make-up-hour cap a
// user has left. The cap itself is configuration, injected at
// construction.
type AllowanceService interface {
	// RemainingForMonth returns the user's unbooked make-up hours for
	// monthKey ("YYYY-MM").
	RemainingForMonth(ctx context.Context, userID, monthKey string) (float64, error)
}

// RemainingMakeUpHours applies the monthly make-up cap against approved
// make_up requests whose start date falls in monthKey ("YYYY-MM").
// Never negative, even when approvals exceed the cap.
func RemainingMakeUpHours(requests []TimeOffRequest, capHours float64, monthKey string) float64 {
	used := 0.0
	for _, r := range requests {
		if r.Type != RequestTypeMakeUp || r.Status != RequestStatusApproved {
			continue
		}
		if r.StartDate.Format("2006-01") != monthKey {
			continue
		}
		used += r.Hours
	}
	remaining := capHours - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
