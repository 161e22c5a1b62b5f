package roster

import "time"

// Status is the single ranked "what is this person doing right now"
// value. Resolution order: lunch > break > active > pto > uto > make_up >
// logged_out > not_logged_in. StatusNone is returned for past days, where
// no current status applies.
type Status string

const (
	StatusNone        Status = ""
	StatusLunch       Status = "lunch"
	StatusBreak       Status = "break"
	StatusActive      Status = "active"
	StatusPTO         Status = "pto"
	StatusUTO         Status = "uto"
	StatusMakeUp      Status = "make_up"
	StatusLoggedOut   Status = "logged_out"
	StatusNotLoggedIn Status = "not_logged_in"
)

// Row is one employee's live presence status plus supporting metrics for
// one local day.
type Row struct {
	UserID      string     `json:"user_id"`
	Date        string     `json:"date"` // "YYYY-MM-DD" local
	Status      Status     `json:"status"`
	StatusLabel string     `json:"status_label,omitempty"` // e.g. "break #2"
	Since       *time.Time `json:"since,omitempty"`

	FirstLogin   *time.Time `json:"first_login,omitempty"`
	TardyMinutes int        `json:"tardy_minutes"`

	IdleMinutes      int        `json:"idle_minutes"`       // whole-day idle total
	IdleStreakStart  *time.Time `json:"idle_since,omitempty"`
	IdleStreakLength int        `json:"idle_streak_minutes"`

	BreakCount   int `json:"break_count"`
	BreakMinutes int `json:"break_minutes"`
	LunchCount   int `json:"lunch_count"`
	LunchMinutes int `json:"lunch_minutes"`
}
