package http

import (
	"errors"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
	"github.com/workpulse/workpulse-backend-go/internal/service/payperiod"
)

type PayPeriodHandler interface {
	Window(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payPeriodHandlerImpl struct {
	payPeriodService *payperiod.Service
	payPeriodRepo    payroll.PayPeriodRepository
	clock            clock.Clock
}

func NewPayPeriodHandler(payPeriodService *payperiod.Service, payPeriodRepo payroll.PayPeriodRepository, clk clock.Clock) PayPeriodHandler {
	return &payPeriodHandlerImpl{
		payPeriodService: payPeriodService,
		payPeriodRepo:    payPeriodRepo,
		clock:            clk,
	}
}

type windowResponse struct {
	PayDate  string             `json:"pay_date"`
	Start    string             `json:"start"`
	End      string             `json:"end"`
	Previous string             `json:"previous_pay_date"`
	Period   *payroll.PayPeriod `json:"period,omitempty"`
}

// Window implements PayPeriodHandler. Any calendar date is accepted; the
// response carries the canonical anchor it normalizes to.
func (h *payPeriodHandlerImpl) Window(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("pay_date")
	if validator.IsEmpty(raw) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "pay_date", Message: "is required"},
		})
		return
	}

	payDate, err := h.payPeriodService.ParsePayDate(raw)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	window := h.payPeriodService.Window(payDate)
	previous := h.payPeriodService.Previous(payDate)

	resp := windowResponse{
		PayDate:  h.clock.DateKey(window.PayDate),
		Start:    window.Start.Format("2006-01-02T15:04:05.000Z07:00"),
		End:      window.End.Format("2006-01-02T15:04:05.000Z07:00"),
		Previous: h.clock.DateKey(previous),
	}

	period, err := h.payPeriodRepo.GetByPayDate(r.Context(), window.PayDate)
	switch {
	case err == nil:
		resp.Period = period
	case errors.Is(err, payroll.ErrPayPeriodNotFound):
		// window math stands on its own
	default:
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements PayPeriodHandler.
func (h *payPeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errs validator.ValidationErrors
	from, ok := parseLocalDate(q.Get("from"), h.clock.Location())
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
	}
	to, ok := parseLocalDate(q.Get("to"), h.clock.Location())
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	start := h.clock.StartOfDay(from)
	end := h.clock.EndOfDay(to)

	periods, err := h.payPeriodRepo.List(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}
