package http

import (
	"net/http"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	summaryService attendance.SummaryService
	clock          clock.Clock
}

func NewTimesheetHandler(summaryService attendance.SummaryService, clk clock.Clock) TimesheetHandler {
	return &timesheetHandlerImpl{
		summaryService: summaryService,
		clock:          clk,
	}
}

// Summary implements TimesheetHandler. from and to are local calendar
// dates; the reconciled range runs from from's midnight through to's end
// of day.
func (h *timesheetHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errs validator.ValidationErrors

	userID := q.Get("user_id")
	if validator.IsEmpty(userID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	} else if !validator.IsValidUUID(userID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid UUID"})
	}

	from, ok := parseLocalDate(q.Get("from"), h.clock.Location())
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
	}
	to, ok := parseLocalDate(q.Get("to"), h.clock.Location())
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) == 0 && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	summary, err := h.summaryService.Summarize(r.Context(), userID, h.clock.StartOfDay(from), h.clock.EndOfDay(to), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// parseLocalDate reads a "YYYY-MM-DD" query param as a local calendar
// date in the payroll timezone.
func parseLocalDate(raw string, loc *time.Location) (time.Time, bool) {
	if _, ok := validator.IsValidDate(raw); !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
