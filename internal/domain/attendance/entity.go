package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// MonthFact is a precomputed attendance rollup for one user for one
// calendar month, keyed by (UserID, MonthKey). Facts computed after the
// day-granular pipeline shipped carry a Snapshot; older facts carry only
// month-level totals plus the RangeStart/RangeEnd they were computed
// over, which the reconciler prorates across partial overlaps.
type MonthFact struct {
	ID         string
	UserID     string
	MonthKey   string // "YYYY-MM"
	Snapshot   *MonthSnapshot
	Totals     FactTotals
	RangeStart time.Time
	RangeEnd   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FactTotals are month-level aggregates, always present.
type FactTotals struct {
	WorkedHours  float64 `json:"worked_hours"`
	PTOHours     float64 `json:"pto_hours"`
	UTOHours     float64 `json:"uto_hours"`
	MakeUpHours  float64 `json:"make_up_hours"`
	TardyMinutes int     `json:"tardy_minutes"`
}

// MonthSnapshot is the day-by-day breakdown stored as JSONB.
type MonthSnapshot struct {
	Days           []DaySnapshot   `json:"days"`
	MakeUpRequests []MakeUpRequest `json:"make_up_requests,omitempty"`
}

// DaySnapshot is one day's materialized attendance detail.
type DaySnapshot struct {
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

// MakeUpRequest is a snapshotted make-up booking carried inside a fact.
type MakeUpRequest struct {
	RequestID string  `json:"request_id"`
	StartDate string  `json:"start_date"` // "YYYY-MM-DD"
	EndDate   string  `json:"end_date"`
	Hours     float64 `json:"hours"`
	Note      *string `json:"note,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (s MonthSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (s *MonthSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MonthSnapshot: invalid type")
	}
	return json.Unmarshal(bytes, s)
}
