package timeoff

import "time"

type RequestType string

const (
	RequestTypePTO    RequestType = "pto"
	RequestTypeUTO    RequestType = "uto"
	RequestTypeMakeUp RequestType = "make_up"
)

// StatusPriority ranks request types for presence display when several
// cover the same day. Lower wins.
func (t RequestType) StatusPriority() int {
	switch t {
	case RequestTypePTO:
		return 0
	case RequestTypeUTO:
		return 1
	case RequestTypeMakeUp:
		return 2
	}
	return 3
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// TimeOffRequest is an approved-or-pending absence or make-up booking.
// StartDate and EndDate are local-midnight day bounds, both inclusive.
type TimeOffRequest struct {
	ID        string
	UserID    string
	Type      RequestType
	Status    RequestStatus
	StartDate time.Time
	EndDate   time.Time
	Hours     float64
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the request's date range intersects the local
// day [dayStart, dayEnd].
func (r *TimeOffRequest) Covers(dayStart, dayEnd time.Time) bool {
	return !r.StartDate.After(dayEnd) && !r.EndDate.Before(dayStart)
}
