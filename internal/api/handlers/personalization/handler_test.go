package personalization

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
	loc *time.Location
}

func (c fixedClock) Now() time.Time           { return c.now }
func (c fixedClock) Location() *time.Location { return c.loc }

func TestHandle(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	// 15:30 UTC = 10:30 EST
	clock := fixedClock{now: time.Date(2025, 5, 14, 15, 30, 0, 0, time.UTC), loc: loc}
	h := NewHandler(clock, nopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{name: "with body", body: `{"caller_id":"+15550100","conversation_id":"conv-1"}`},
		{name: "empty body", body: ``},
		{name: "invalid body", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/elevenlabs/personalization", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp PersonalizationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			vars := resp.DynamicVariables
			assert.Equal(t, "Wednesday, May 14, 2025", vars.CurrentDate)
			assert.Equal(t, "10:30 AM", vars.CurrentTime)
			assert.Equal(t, "2025-05-14", vars.CurrentISODate)
			assert.Equal(t, "Wednesday", vars.CurrentWeekday)
			assert.Equal(t, "EST", vars.Timezone)
			assert.Equal(t, "9:00 AM", vars.WorkdayStartsAt)
			assert.Equal(t, "5:00 PM", vars.WorkdayEndsAt)
		})
	}
}

func TestNewDynamicVariables_DateFollowsLocation(t *testing.T) {
	// 02:00 UTC четверга - еще среда в Нью-Йорке
	ny := time.FixedZone("EDT", -4*60*60)
	now := time.Date(2025, 5, 15, 2, 0, 0, 0, time.UTC).In(ny)

	vars := NewDynamicVariables(now)

	assert.Equal(t, "2025-05-14", vars.CurrentISODate)
	assert.Equal(t, "10:00 PM", vars.CurrentTime)
}
