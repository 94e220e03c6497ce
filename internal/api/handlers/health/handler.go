package health

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

const statusOK = "ok"

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

type Handler struct {
	version      string
	environment  string
	timeProvider TimeProvider
}

func NewHandler(version, environment string, timeProvider TimeProvider) *Handler {
	return &Handler{
		version:      version,
		environment:  environment,
		timeProvider: timeProvider,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:      statusOK,
		Timestamp:   h.timeProvider.Now().UTC(),
		Version:     h.version,
		Environment: h.environment,
	})
}
