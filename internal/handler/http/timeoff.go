package http

import (
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type TimeOffHandler interface {
	MakeUpAllowance(w http.ResponseWriter, r *http.Request)
}

type timeOffHandlerImpl struct {
	allowanceService timeoff.AllowanceService
}

func NewTimeOffHandler(allowanceService timeoff.AllowanceService) TimeOffHandler {
	return &timeOffHandlerImpl{
		allowanceService: allowanceService,
	}
}

type makeUpAllowanceResponse struct {
	UserID         string  `json:"user_id"`
	Month          string  `json:"month"`
	RemainingHours float64 `json:"remaining_hours"`
}

// MakeUpAllowance implements TimeOffHandler.
func (h *timeOffHandlerImpl) MakeUpAllowance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errs validator.ValidationErrors

	userID := q.Get("user_id")
	if validator.IsEmpty(userID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	} else if !validator.IsValidUUID(userID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid UUID"})
	}

	month := q.Get("month")
	if !validator.IsValidMonthKey(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a month in YYYY-MM format"})
	}

	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	remaining, err := h.allowanceService.RemainingForMonth(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, makeUpAllowanceResponse{
		UserID:         userID,
		Month:          month,
		RemainingHours: remaining,
	})
}
