package attendance

import (
	"context"
	"time"
)

// SummaryService reconciles month facts and live session data into one
// attendance summary for an arbitrary range.
type SummaryService interface {
	// Summarize merges per-day snapshots, prorated coarse facts and live
	// sessions for [periodStart, periodEnd] (inclusive, zone-aligned).
	Summarize(ctx context.Context, userID string, periodStart, periodEnd, now time.Time) (Summary, error)
}
