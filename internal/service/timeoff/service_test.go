package timeoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/clock"
)

const testUser = "user-1"

var testClock = clock.MustNew("America/New_York")

type fakeTimeOffRepo struct {
	requests []timeoff.TimeOffRequest
	err      error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeTimeOffRepo) GetApprovedCovering(_ context.Context, userIDs []string, start, end time.Time) ([]timeoff.TimeOffRequest, error) {
	f.gotStart, f.gotEnd = start, end
	if f.err != nil {
		return nil, f.err
	}
	var out []timeoff.TimeOffRequest
	for _, r := range f.requests {
		for _, id := range userIDs {
			if r.UserID == id {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func approvedMakeUp(t *testing.T, start string, hours float64) timeoff.TimeOffRequest {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", start, testClock.Location())
	require.NoError(t, err)
	return timeoff.TimeOffRequest{
		UserID:    testUser,
		Type:      timeoff.RequestTypeMakeUp,
		Status:    timeoff.RequestStatusApproved,
		StartDate: d,
		EndDate:   d,
		Hours:     hours,
	}
}

func TestRemainingForMonth_AppliesConfiguredCap(t *testing.T) {
	t.Parallel()

	repo := &fakeTimeOffRepo{requests: []timeoff.TimeOffRequest{
		approvedMakeUp(t, "2024-05-02", 2),
		approvedMakeUp(t, "2024-05-20", 1.5),
	}}
	svc := NewAllowanceService(testClock, repo, 8)

	remaining, err := svc.RemainingForMonth(context.Background(), testUser, "2024-05")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, remaining, 1e-9)

	// The repository is queried for exactly the month's local bounds.
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, testClock.Location()), repo.gotStart)
	assert.Equal(t, time.Date(2024, 5, 31, 23, 59, 59, 999_000_000, testClock.Location()), repo.gotEnd)
}

func TestRemainingForMonth_CapFullyBooked(t *testing.T) {
	t.Parallel()

	repo := &fakeTimeOffRepo{requests: []timeoff.TimeOffRequest{
		approvedMakeUp(t, "2024-05-02", 10),
	}}
	svc := NewAllowanceService(testClock, repo, 8)

	remaining, err := svc.RemainingForMonth(context.Background(), testUser, "2024-05")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestRemainingForMonth_InvalidMonth(t *testing.T) {
	t.Parallel()

	svc := NewAllowanceService(testClock, &fakeTimeOffRepo{}, 8)

	_, err := svc.RemainingForMonth(context.Background(), testUser, "2024-5")
	assert.ErrorIs(t, err, timeoff.ErrInvalidMonth)
}

func TestRemainingForMonth_RepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("boom")
	svc := NewAllowanceService(testClock, &fakeTimeOffRepo{err: repoErr}, 8)

	_, err := svc.RemainingForMonth(context.Background(), testUser, "2024-05")
	assert.ErrorIs(t, err, repoErr)
}
