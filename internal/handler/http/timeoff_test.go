package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/timeoff"
)

const handlerTestUser = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

type fakeAllowanceService struct {
	remaining float64
	err       error

	calls    int
	gotUser  string
	gotMonth string
}

func (f *fakeAllowanceService) RemainingForMonth(_ context.Context, userID, monthKey string) (float64, error) {
	f.calls++
	f.gotUser, f.gotMonth = userID, monthKey
	return f.remaining, f.err
}

func allowanceRequest(userID, month string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/v1/make-up/allowance?user_id="+userID+"&month="+month, nil)
}

func TestMakeUpAllowance_ReturnsRemainingHours(t *testing.T) {
	t.Parallel()

	svc := &fakeAllowanceService{remaining: 4.5}
	handler := NewTimeOffHandler(svc)

	rec := httptest.NewRecorder()
	handler.MakeUpAllowance(rec, allowanceRequest(handlerTestUser, "2024-05"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handlerTestUser, svc.gotUser)
	assert.Equal(t, "2024-05", svc.gotMonth)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			UserID         string  `json:"user_id"`
			Month          string  `json:"month"`
			RemainingHours float64 `json:"remaining_hours"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "2024-05", body.Data.Month)
	assert.InDelta(t, 4.5, body.Data.RemainingHours, 1e-9)
}

func TestMakeUpAllowance_RejectsBadMonth(t *testing.T) {
	t.Parallel()

	svc := &fakeAllowanceService{}
	handler := NewTimeOffHandler(svc)

	rec := httptest.NewRecorder()
	handler.MakeUpAllowance(rec, allowanceRequest(handlerTestUser, "2024-13"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestMakeUpAllowance_RejectsBadUserID(t *testing.T) {
	t.Parallel()

	svc := &fakeAllowanceService{}
	handler := NewTimeOffHandler(svc)

	rec := httptest.NewRecorder()
	handler.MakeUpAllowance(rec, allowanceRequest("not-a-uuid", "2024-05"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestMakeUpAllowance_MapsInvalidMonthFromService(t *testing.T) {
	t.Parallel()

	svc := &fakeAllowanceService{err: timeoff.ErrInvalidMonth}
	handler := NewTimeOffHandler(svc)

	rec := httptest.NewRecorder()
	handler.MakeUpAllowance(rec, allowanceRequest(handlerTestUser, "2024-05"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
