package check_times

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	checkTimes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *checkTimes.Response
	err     error
	calls   int
	lastReq *checkTimes.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkTimes.Request) (*checkTimes.Response, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &checkTimes.Response{
		Date:            "2025-05-16",
		Periods:         []domain.Period{domain.PeriodAfternoon},
		DurationMinutes: 30,
		Readable:        domain.ReadableRange{Start: "Friday, May 16, 2025", End: "Friday, May 16, 2025"},
		Slots: []domain.BookableSlot{
			{Time: "2:40 PM", Timestamp: time.Date(2025, 5, 16, 14, 40, 0, 0, time.UTC), SchedulingURL: "https://calendly.com/b"},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendly/times?eventType=uri&date=2025-05-16&period=afternoon&duration=30", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "afternoon", uc.lastReq.Period)
	require.NotNil(t, uc.lastReq.DurationMinutes)
	assert.Equal(t, 30, *uc.lastReq.DurationMinutes)

	var resp TimesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Friday, May 16, 2025", resp.ReadableDate)
	assert.Equal(t, []string{"afternoon"}, resp.Periods)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, BookableSlot{
		Time:          "2:40 PM",
		Timestamp:     "2025-05-16T14:40:00Z",
		SchedulingURL: "https://calendly.com/b",
	}, resp.Slots[0])
}

func TestHandle_EmptySlotsIsOK(t *testing.T) {
	uc := &fakeUseCase{resp: &checkTimes.Response{
		Date:    "2025-05-16",
		Periods: []domain.Period{domain.PeriodMorning, domain.PeriodAfternoon},
		Slots:   []domain.BookableSlot{},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendly/times?eventType=uri&date=2025-05-16", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.Nil(t, uc.lastReq.DurationMinutes)
}

func TestHandle_Validation(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing event type", url: "/api/v1/calendly/times?date=2025-05-16"},
		{name: "missing date", url: "/api/v1/calendly/times?eventType=uri"},
		{name: "zero duration", url: "/api/v1/calendly/times?eventType=uri&date=2025-05-16&duration=0"},
		{name: "non numeric duration", url: "/api/v1/calendly/times?eventType=uri&date=2025-05-16&duration=half"},
		{name: "duration over a day", url: "/api/v1/calendly/times?eventType=uri&date=2025-05-16&duration=1441"},
		{name: "overflowing duration", url: "/api/v1/calendly/times?eventType=uri&date=2025-05-16&duration=200000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, uc.calls)
		})
	}
}
