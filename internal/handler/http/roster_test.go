package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/roster"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

type fakeRosterService struct {
	rows []roster.Row

	gotUserIDs []string
	gotNow     time.Time
}

func (f *fakeRosterService) BuildRow(_ context.Context, userID string, _, _ time.Time) (roster.Row, error) {
	return roster.Row{UserID: userID}, nil
}

func (f *fakeRosterService) BuildRoster(_ context.Context, userIDs []string, now time.Time) ([]roster.Row, error) {
	f.gotUserIDs = userIDs
	f.gotNow = now
	return f.rows, nil
}

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) ListActive(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

func rosterRequest(params url.Values) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/v1/roster?"+params.Encode(), nil)
}

func TestRosterList_AtTimestampOverridesNow(t *testing.T) {
	t.Parallel()

	svc := &fakeRosterService{}
	handler := NewRosterHandler(svc, &fakeUserRepo{})

	at := "2024-05-06T14:20:00-04:00"
	rec := httptest.NewRecorder()
	handler.List(rec, rosterRequest(url.Values{
		"user_ids": {handlerTestUser},
		"at":       {at},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	want, err := time.Parse(time.RFC3339, at)
	require.NoError(t, err)
	assert.True(t, svc.gotNow.Equal(want))
	assert.Equal(t, []string{handlerTestUser}, svc.gotUserIDs)
}

func TestRosterList_RejectsBadAtTimestamp(t *testing.T) {
	t.Parallel()

	svc := &fakeRosterService{}
	handler := NewRosterHandler(svc, &fakeUserRepo{})

	rec := httptest.NewRecorder()
	handler.List(rec, rosterRequest(url.Values{"at": {"2024-05-06 14:20"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.True(t, svc.gotNow.IsZero())
}

func TestRosterList_DefaultsToActiveUsers(t *testing.T) {
	t.Parallel()

	svc := &fakeRosterService{}
	repo := &fakeUserRepo{users: []user.User{
		{ID: "user-a", Active: true},
		{ID: "user-b", Active: true},
	}}
	handler := NewRosterHandler(svc, repo)

	rec := httptest.NewRecorder()
	handler.List(rec, rosterRequest(url.Values{}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user-a", "user-b"}, svc.gotUserIDs)
}
