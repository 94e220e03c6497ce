package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/availability"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type availabilityCall struct {
	eventTypeID string
	start, end  time.Time
}

type fakeCalendly struct {
	slots []domain.RawSlot
	err   error
	calls []availabilityCall
}

func (f *fakeCalendly) GetAvailableTimes(_ context.Context, eventTypeID string, start, end time.Time) ([]domain.RawSlot, error) {
	f.calls = append(f.calls, availabilityCall{eventTypeID: eventTypeID, start: start, end: end})
	return f.slots, f.err
}

func newUseCase(now time.Time, client *fakeCalendly) *UseCase {
	calc := availability.NewCalculator(&fixedTimeProvider{now: now}, time.UTC)
	return NewUseCase(client, calc, nopLogger{})
}

func TestExecute_CurrentWeekByDefault(t *testing.T) {
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)
	client := &fakeCalendly{slots: []domain.RawSlot{
		{StartTime: time.Date(2025, 5, 14, 14, 0, 0, 0, time.UTC)},
		{StartTime: time.Date(2025, 5, 15, 9, 30, 0, 0, time.UTC)},
	}}

	got, err := newUseCase(now, client).Execute(context.Background(), &Request{EventTypeID: "uri"})
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	assert.Equal(t, "uri", client.calls[0].eventTypeID)
	assert.Equal(t, now.Add(3*time.Hour), client.calls[0].start)

	assert.Equal(t, map[string]domain.DaySummary{
		"Wednesday": {Date: "2025-05-14", Afternoon: true},
		"Thursday":  {Date: "2025-05-15", Morning: true},
	}, got.Summary)
	assert.Equal(t, "Monday, May 12, 2025", got.Readable.Start)
	assert.Equal(t, "Sunday, May 18, 2025", got.Readable.End)
}

func TestExecute_FutureWeek(t *testing.T) {
	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	client := &fakeCalendly{}

	got, err := newUseCase(now, client).Execute(context.Background(), &Request{WeekOffset: ptr.Ptr(2), EventTypeID: "uri"})
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	assert.Equal(t, time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), client.calls[0].start)
	assert.Empty(t, got.Summary)
	assert.Equal(t, "Monday, May 26, 2025", got.Readable.Start)
	assert.Equal(t, "Sunday, June 1, 2025", got.Readable.End)
}

func TestExecute_EmptyRangeSkipsProvider(t *testing.T) {
	now := time.Date(2025, 5, 18, 23, 0, 0, 0, time.UTC)
	client := &fakeCalendly{}

	got, err := newUseCase(now, client).Execute(context.Background(), &Request{WeekOffset: ptr.Ptr(0), EventTypeID: "uri"})
	require.NoError(t, err)

	assert.Empty(t, client.calls)
	assert.NotNil(t, got.Summary)
	assert.Empty(t, got.Summary)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "missing event type", req: &Request{WeekOffset: ptr.Ptr(1)}},
		{name: "negative offset", req: &Request{WeekOffset: ptr.Ptr(-2), EventTypeID: "uri"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCalendly{}
			_, err := newUseCase(now, client).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, client.calls)
		})
	}
}

func TestExecute_UpstreamUnavailable(t *testing.T) {
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)
	client := &fakeCalendly{err: errors.New("503 service unavailable")}

	_, err := newUseCase(now, client).Execute(context.Background(), &Request{EventTypeID: "uri"})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
