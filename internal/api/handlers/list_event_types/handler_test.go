package list_event_types

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	listEventTypes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/list_event_types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	items []domain.EventType
	err   error
}

func (f *fakeUseCase) Execute(context.Context) ([]domain.EventType, error) {
	return f.items, f.err
}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&fakeUseCase{items: []domain.EventType{
		{ID: "uri-1", Name: "Intro", DurationMinutes: 30, Description: "Short intro", SchedulingURL: "https://calendly.com/intro"},
	}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendly/event-types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EventTypesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.EventTypes, 1)
	assert.Equal(t, "uri-1", resp.EventTypes[0].ID)
	assert.Equal(t, 30, resp.EventTypes[0].Duration)
	assert.Equal(t, "Short intro", resp.EventTypes[0].Description)
}

func TestHandle_UpstreamUnavailable(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: 503", listEventTypes.ErrUpstreamUnavailable)}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendly/event-types", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
