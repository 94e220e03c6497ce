package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream(t *testing.T) {
	m := New("voice-scheduler")

	m.ObserveUpstream("/event_types", "200", 120*time.Millisecond)
	m.ObserveUpstream("/event_types", "200", 80*time.Millisecond)
	m.ObserveUpstream("/event_types", "error", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `upstream_requests_total{endpoint="/event_types",service="voice-scheduler",status="200"} 2`)
	assert.Contains(t, body, `upstream_requests_total{endpoint="/event_types",service="voice-scheduler",status="error"} 1`)
	assert.Contains(t, body, `upstream_request_duration_seconds_count{endpoint="/event_types",service="voice-scheduler"} 3`)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New("voice-scheduler")
	m.ObserveHTTP(http.MethodGet, "/health", "200", 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",service="voice-scheduler",status="200"} 1`)
}

func TestNewIsolatedRegistries(t *testing.T) {
	// Повторное создание не должно паниковать на повторной регистрации
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
