package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/session"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepository{db: db}
}

// GetSessionsForRange implements session.SessionRepository. Sessions are
// returned with their pauses, events and minute samples preloaded; a
// nested record that fails to hydrate is skipped, never fatal.
func (r *sessionRepository) GetSessionsForRange(ctx context.Context, userID *string, start, end time.Time) ([]session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, started_at, ended_at, status, created_at, updated_at
		FROM sessions
		WHERE started_at < $2
		  AND (ended_at IS NULL OR ended_at > $1)
		  AND ($3::text IS NULL OR user_id = $3)
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	ids := make([]string, 0)
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartedAt, &s.EndedAt, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			slog.Warn("skipping unscannable session row", "error", err)
			continue
		}
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	byID := make(map[string]*session.Session, len(sessions))
	for i := range sessions {
		byID[sessions[i].ID] = &sessions[i]
	}

	if err := r.loadPauses(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.loadEvents(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.loadSamples(ctx, byID, ids, start, end); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) loadPauses(ctx context.Context, byID map[string]*session.Session, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, type, sequence, started_at, ended_at
		FROM pauses
		WHERE session_id = ANY($1)
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query pauses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p session.Pause
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Type, &p.Sequence, &p.StartedAt, &p.EndedAt); err != nil {
			slog.Warn("skipping unscannable pause row", "error", err)
			continue
		}
		s, ok := byID[p.SessionID]
		if !ok {
			slog.Warn("skipping orphan pause", "pause_id", p.ID, "session_id", p.SessionID)
			continue
		}
		s.Pauses = append(s.Pauses, p)
	}
	return rows.Err()
}

func (r *sessionRepository) loadEvents(ctx context.Context, byID map[string]*session.Session, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, type, timestamp
		FROM session_events
		WHERE session_id = ANY($1)
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query session events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e session.Event
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Type, &e.Timestamp); err != nil {
			slog.Warn("skipping unscannable event row", "error", err)
			continue
		}
		if s, ok := byID[e.SessionID]; ok {
			s.Events = append(s.Events, e)
		}
	}
	return rows.Err()
}

// loadSamples restricts samples to the requested range; a long-lived
// session can carry days of minute rows that callers never look at.
func (r *sessionRepository) loadSamples(ctx context.Context, byID map[string]*session.Session, ids []string, start, end time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT session_id, minute_start, active, idle
		FROM minute_samples
		WHERE session_id = ANY($1)
		  AND minute_start >= $2
		  AND minute_start < $3
		ORDER BY minute_start ASC
	`

	rows, err := q.Query(ctx, query, ids, start, end)
	if err != nil {
		return fmt.Errorf("failed to query minute samples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m session.MinuteSample
		if err := rows.Scan(&m.SessionID, &m.MinuteStart, &m.Active, &m.Idle); err != nil {
			slog.Warn("skipping unscannable minute sample", "error", err)
			continue
		}
		if s, ok := byID[m.SessionID]; ok {
			s.Samples = append(s.Samples, m)
		}
	}
	return rows.Err()
}
