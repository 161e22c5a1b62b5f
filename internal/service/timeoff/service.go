package timeoff

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
)

// AllowanceServiceImpl applies the configured monthly make-up-hour cap
// against a user's approved bookings.
type AllowanceServiceImpl struct {
	clock    clock.Clock
	capHours float64
	timeoff.TimeOffRepository
}

func NewAllowanceService(
	clk clock.Clock,
	timeOffRepo timeoff.TimeOffRepository,
	capHours float64,
) timeoff.AllowanceService {
	return &AllowanceServiceImpl{
		clock:             clk,
		capHours:          capHours,
		TimeOffRepository: timeOffRepo,
	}
}

// RemainingForMonth implements timeoff.AllowanceService.
func (a *AllowanceServiceImpl) RemainingForMonth(ctx context.Context, userID, monthKey string) (float64, error) {
	monthStart, monthEnd, err := a.clock.MonthKeyRange(monthKey)
	if err != nil {
		return 0, timeoff.ErrInvalidMonth
	}

	requests, err := a.TimeOffRepository.GetApprovedCovering(ctx, []string{userID}, monthStart, monthEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to get time-off requests: %w", err)
	}

	return timeoff.RemainingMakeUpHours(requests, a.capHours, monthKey), nil
}
