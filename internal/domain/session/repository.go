package session

import (
	"context"
	"time"
)

type SessionRepository interface {
	// GetSessionsForRange returns sessions overlapping [start, end),
	// pauses, events and in-range minute samples preloaded, ordered by
	// StartedAt. A nil userID returns sessions for all users.
	GetSessionsForRange(ctx context.Context, userID *string, start, end time.Time) ([]Session, error)
}
