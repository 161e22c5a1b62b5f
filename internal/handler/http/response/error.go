package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/domain/schedule"
	"github.com/workpulse/workpulse-backend-go/internal/domain/session"
	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPayDate):
		BadRequest(w, "Invalid pay date", nil)
	case errors.Is(err, payroll.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrMonthFactNotFound):
		NotFound(w, "Month fact not found")

	// Time-off domain errors
	case errors.Is(err, timeoff.ErrInvalidMonth):
		BadRequest(w, "Invalid month", nil)

	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Session not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
