package session

import "time"

type SessionStatus string

const (
	SessionStatusActive SessionStatus = "active"
	SessionStatusEnded  SessionStatus = "ended"
)

type PauseType string

const (
	PauseTypeBreak PauseType = "break"
	PauseTypeLunch PauseType = "lunch"
)

type EventType string

const (
	EventTypeLogin        EventType = "login"
	EventTypeLogout       EventType = "logout"
	EventTypePresenceMiss EventType = "presence_miss"
	EventTypePresenceAck  EventType = "presence_ack"
)

// Session is one contiguous logged-in stretch for one user. EndedAt is
// nil while the session is still open; a session can span local calendar
// days, so per-day consumers clamp rather than trust its bounds.
type Session struct {
	ID        string
	UserID    string
	StartedAt time.Time
	EndedAt   *time.Time
	Status    SessionStatus
	Pauses    []Pause
	Events    []Event
	Samples   []MinuteSample
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the session has not ended yet.
func (s *Session) Open() bool {
	return s.EndedAt == nil
}

// Pause is a break or lunch inside a session. Sequence counts pauses of
// the same type within the session, starting at 1.
type Pause struct {
	ID        string
	SessionID string
	Type      PauseType
	Sequence  int
	StartedAt time.Time
	EndedAt   *time.Time
}

// Open reports whether the pause has not ended yet.
func (p *Pause) Open() bool {
	return p.EndedAt == nil
}

// MinuteSample is one minute of presence telemetry. Idle means the
// minute saw no input activity; Active is the raw activity flag the
// agent reported.
type MinuteSample struct {
	SessionID   string
	MinuteStart time.Time
	Active      bool
	Idle        bool
}

// Event is a discrete session lifecycle or presence event.
type Event struct {
	ID        string
	SessionID string
	Type      EventType
	Timestamp time.Time
}
