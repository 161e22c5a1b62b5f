package payperiod

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
)

// Service maps arbitrary pay dates to their canonical semi-monthly
// anchors and coverage windows. All math is wall-clock in the payroll
// timezone.
type Service struct {
	clock clock.Clock
}

func NewService(clk clock.Clock) *Service {
	return &Service{clock: clk}
}

// ParsePayDate validates caller input. Unparseable dates are a
// validation failure, never silently defaulted.
func (s *Service) ParsePayDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", raw, s.clock.Location())
	if err != nil {
		return time.Time{}, payroll.ErrInvalidPayDate
	}
	return t, nil
}

// Normalize rounds a pay date to its canonical anchor: kept when already
// on the 15th or the month's last day, otherwise the 15th when the local
// day-of-month is below 15, else the last day.
func (s *Service) Normalize(payDate time.Time) time.Time {
	local := s.clock.In(payDate)
	lastDay := s.clock.LastDayOfMonth(payDate)

	day := local.Day()
	if day == 15 || day == lastDay {
		return s.clock.StartOfDay(payDate)
	}
	if day < 15 {
		return time.Date(local.Year(), local.Month(), 15, 0, 0, 0, 0, s.clock.Location())
	}
	return time.Date(local.Year(), local.Month(), lastDay, 0, 0, 0, 0, s.clock.Location())
}

// Window computes the coverage window for a pay date. The mapping is
// deliberately asymmetric: a 15th pay date pays out the second half of
// the prior month, an end-of-month pay date pays out the first half of
// the current month.
func (s *Service) Window(payDate time.Time) payroll.Window {
	anchor := s.Normalize(payDate)
	local := s.clock.In(anchor)

	if local.Day() == 15 {
		prev := time.Date(local.Year(), local.Month()-1, 16, 0, 0, 0, 0, s.clock.Location())
		return payroll.Window{
			PayDate: anchor,
			Start:   s.clock.StartOfDay(prev),
			End:     s.clock.EndOfMonth(prev),
		}
	}

	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.clock.Location())
	fifteenth := time.Date(local.Year(), local.Month(), 15, 0, 0, 0, 0, s.clock.Location())
	return payroll.Window{
		PayDate: anchor,
		Start:   s.clock.StartOfDay(first),
		End:     s.clock.EndOfDay(fifteenth),
	}
}

// Previous returns the anchor immediately before payDate's anchor: the
// last day of the previous month for a 15th anchor, the 15th of the same
// month for an end-of-month anchor.
func (s *Service) Previous(payDate time.Time) time.Time {
	anchor := s.Normalize(payDate)
	local := s.clock.In(anchor)

	if local.Day() == 15 {
		prevMonth := time.Date(local.Year(), local.Month()-1, 1, 0, 0, 0, 0, s.clock.Location())
		return s.clock.StartOfDay(s.clock.EndOfMonth(prevMonth))
	}
	return time.Date(local.Year(), local.Month(), 15, 0, 0, 0, 0, s.clock.Location())
}
