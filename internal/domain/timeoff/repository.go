package timeoff

import (
	"context"
	"time"
)

type TimeOffRepository interface {
	// GetApprovedCovering returns approved requests for the given users
	// whose date range intersects [start, end], ordered by StartDate.
	GetApprovedCovering(ctx context.Context, userIDs []string, start, end time.Time) ([]TimeOffRequest, error)
}
